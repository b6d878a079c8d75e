// Package huffpack compresses whole byte buffers with a Huffman prefix code
// built from the buffer's own byte frequencies.
//
// The code table travels with the data, so any consistent tie-breaking
// produces a valid container.  See Compress and Decompress for the entry
// points, and Container for the on-disk layout.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
