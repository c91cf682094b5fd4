// internal/event/types.go
package event

const (
	StyleChanged     EventType = "StyleChanged"     // Data: defs.Style
	StyleRejected    EventType = "StyleRejected"    // Data: error
	ExplosionSpawned EventType = "ExplosionSpawned" // Data: system.Hit
	ChatMessage      EventType = "ChatMessage"      // Data: chat.Message
	FrameCaptured    EventType = "FrameCaptured"    // Data: file path
)
