// Package image produces program images for the cpu package.
//
// An image is an ordered list of 16-bit instruction words. Images are read
// from hex text, from raw big-endian binary, or generated by running a
// starlark script that sets the global 'program' to a list of words:
//
//	total = 0x40
//	program = [
//	    ldl(R0, 1),
//	    st(R0, total),
//	    hlt(),
//	]
//
// Every opcode has a builtin of the same name that returns its encoded word;
// 'and' and 'or' are spelled 'and_' and 'or_'.
package image
