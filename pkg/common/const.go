package common

const (
	// Cache key for an account's trade snapshot, formatted with the account ID.
	KEY_ACCOUNT_TRADES = "account_trades:%d"
)

const (
	MarkdownExtension = ".md"
)
