package hotelpager

const (
	FirstPage         = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultMaxVisible = 5
)

// IsNormalizedPageSizeMax replaces a non-positive size with DefaultPageSize and
// caps it at maxSize, reporting whether size was already valid.
func IsNormalizedPageSizeMax(size int, maxSize int) (int, bool) {
	if size <= 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}

func NormalizePageSize(size int) int {
	return NormalizePageSizeMax(size, MaxPageSize)
}

// NormalizePage maps any page below FirstPage to FirstPage.
func NormalizePage(page int) int {
	return max(page, FirstPage)
}

// NormalizeMaxVisible maps a non-positive button count to DefaultMaxVisible.
func NormalizeMaxVisible(maxVisible int) int {
	if maxVisible < 1 {
		return DefaultMaxVisible
	}

	return maxVisible
}

// TotalPagesFor returns the number of pages needed for totalElements rows at
// size rows per page. An empty dataset still has one (empty) page.
func TotalPagesFor(totalElements int64, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if totalElements <= 0 {
		return FirstPage
	}

	return int((totalElements + int64(size) - 1) / int64(size))
}
