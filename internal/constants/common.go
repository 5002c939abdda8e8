package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixCatalog    CachePrefix = "CATALOG_"
	CachePrefixChatRecent CachePrefix = "CHAT_RECENT"
	CachePrefixStream     CachePrefix = "STREAM_"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "Email already registered"
	MsgAccessDenied       = "Access denied"
	MsgLoginRequired      = "Login required"
	MsgStreamNotFound     = "Stream not found"
	MsgUserNotFound       = "User not found"
)
