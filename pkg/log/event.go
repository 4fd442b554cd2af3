package log

import "time"

// Event is one trace record. Exactly one of the payload pointers is set.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the Manager instance that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction of the interaction relative to the vendor SDK.
	Direction Direction `cbor:"3,keyasint"`

	// Layer that captured the event.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the payload.
	Category Category `cbor:"5,keyasint"`

	// ReaderID is the reader the event concerns, if any.
	ReaderID *int32 `cbor:"6,keyasint,omitempty"`

	Command  *CommandEvent   `cbor:"10,keyasint,omitempty"`
	Result   *ResultEvent    `cbor:"11,keyasint,omitempty"`
	Callback *CallbackEvent  `cbor:"12,keyasint,omitempty"`
	Error    *ErrorEventData `cbor:"13,keyasint,omitempty"`
}

// Name returns the command, result or callback name carried by the event.
func (e Event) Name() string {
	switch {
	case e.Command != nil:
		return e.Command.Name
	case e.Result != nil:
		return e.Result.Name
	case e.Callback != nil:
		return e.Callback.Kind
	default:
		return ""
	}
}

// Direction indicates which way the interaction flows.
type Direction uint8

const (
	// DirectionIn is data coming from the SDK (results, callbacks).
	DirectionIn Direction = 0
	// DirectionOut is a call made into the SDK.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which component captured the event.
type Layer uint8

const (
	// LayerFacade is the command facade.
	LayerFacade Layer = 0
	// LayerBridge is the delegate-to-event bridge.
	LayerBridge Layer = 1
	// LayerService is the bridge service (publishing, journaling).
	LayerService Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerFacade:
		return "FACADE"
	case LayerBridge:
		return "BRIDGE"
	case LayerService:
		return "SERVICE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	CategoryCommand  Category = 0
	CategoryResult   Category = 1
	CategoryCallback Category = 2
	CategoryError    Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryResult:
		return "RESULT"
	case CategoryCallback:
		return "CALLBACK"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures a call into the SDK.
type CommandEvent struct {
	// Name is the facade operation, e.g. "ReadTag".
	Name string `cbor:"1,keyasint"`

	// Args holds the encoded arguments. Passwords are never recorded.
	Args map[string]any `cbor:"2,keyasint,omitempty"`
}

// ResultEvent captures the outcome of a call into the SDK.
type ResultEvent struct {
	Name string `cbor:"1,keyasint"`

	// Status is the raw SDK result code.
	Status uint32 `cbor:"2,keyasint"`

	// StatusName is the symbolic name of Status.
	StatusName string `cbor:"3,keyasint,omitempty"`

	// Message is the SDK status message, if one was returned.
	Message string `cbor:"4,keyasint,omitempty"`

	// Duration of the SDK call. Stored as nanoseconds.
	Duration time.Duration `cbor:"5,keyasint,omitempty"`
}

// OK reports whether the call succeeded.
func (r *ResultEvent) OK() bool {
	return r.Status == 0
}

// CallbackEvent captures a delegate notification.
type CallbackEvent struct {
	// Kind is the event kind, e.g. "read" or "battery".
	Kind string `cbor:"1,keyasint"`

	// Payload is the typed event value (CBOR-compatible representation).
	Payload any `cbor:"2,keyasint,omitempty"`
}

// ErrorEventData captures a failure that did not come from an SDK result,
// such as local parameter validation or a publish failure.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`
	Code    *int   `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
