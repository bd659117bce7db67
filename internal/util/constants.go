package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// TokenCookie carries the session JWT when the Authorization header is absent.
const TokenCookie = "lab_token"

const (
	MimeImage = "image/"
)
