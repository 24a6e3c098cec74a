package selftest

var (
	RuneWidth    = runeWidth
	TruncatePath = truncatePath
)
