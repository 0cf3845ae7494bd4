package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// RequestSizeLimit caps request bodies; engine payloads are tiny.
const RequestSizeLimit = 1 << 20
