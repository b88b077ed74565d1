/*
Package nif implements the NIF container: flat, self-describing, lossless
storage for uncompressed raster images (.nif) and frame sequences (.nvf).

A container is a 32-byte preamble followed by raw frame data, contiguous
and unpadded. Every multi-byte field is big-endian:

	offset  size  field
	0       4     magic 0x4E494600
	4       4     version (major, minor, patch, reserved)
	8       4     feature flags (reserved, written as zero)
	12      4     width
	16      4     height
	20      4     pixel format (0..3)
	24      4     frame count (0 = single still image)
	28      4     frames per second (float32)

Four raw pixel layouts exist: RGBA8888 (4 bytes per pixel), RGB888
(3 bytes), RGBA4444 and RGB444 (2 bytes each). The 4-bit formats pack
channels high nibble first in channel order, so an RGBA4444 pixel is
R<<4|G followed by B<<4|A, and RGB444 writes its final low nibble as
zero padding.

The package focuses on practical workflows: stream frames one at a time
through Decoder/Encoder with a single reused frame buffer, or buffer a
whole container with Decode/Encode and the Read/Write path helpers.

Compressed variants (.nifz/.nvfz) are reserved; the flag bit marking them
is rejected until a compressed decode path exists.
*/
package nif
