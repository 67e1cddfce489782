package bytesearch

const (
	// Bytes compared per step by the SWAR search.
	wordSize = 8

	// Every byte of a word set to 0x01 and 0x80 respectively.
	lowBits  uint64 = 0x0101010101010101
	highBits uint64 = 0x8080808080808080

	// Vector register widths of the units behind bytes.IndexByte.
	avx2ChunkSize = 32
	sse2ChunkSize = 16
	neonChunkSize = 16
	vxChunkSize   = 16
	vsxChunkSize  = 16
	lsxChunkSize  = 16
)
