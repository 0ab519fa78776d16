package marketplace

const (
	ClientVersion = "v0.1.0"
	DBVersion     = 1
	EventVersion  = 1
)
