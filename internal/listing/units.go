package listing

import "fmt"

// Binary unit thresholds (powers of 1024).
const (
	KB ByteCount = 1 << 10
	MB ByteCount = 1 << 20
	GB ByteCount = 1 << 30
)

// FormatBinaryUnits converts a byte count into a human-readable string
// using binary units. Sizes at or above a threshold use that unit with
// two decimal places; below 1024 the raw byte count is printed. The
// lower bound of each tier is inclusive, so exactly 1024 bytes is
// "1.00KB", not "1024B".
func FormatBinaryUnits(size ByteCount) string {
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2fGB", float64(size)/float64(GB))
	case size >= MB:
		return fmt.Sprintf("%.2fMB", float64(size)/float64(MB))
	case size >= KB:
		return fmt.Sprintf("%.2fKB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%dB", size)
	}
}
