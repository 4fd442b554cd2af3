package log

import (
	"testing"
	"time"
)

func TestEventRoundTripCommand(t *testing.T) {
	reader := int32(1)
	event := Event{
		Timestamp: time.Date(2025, 3, 4, 10, 11, 12, 500, time.UTC),
		SessionID: "sess-1",
		Direction: DirectionOut,
		Layer:     LayerFacade,
		Category:  CategoryCommand,
		ReaderID:  &reader,
		Command: &CommandEvent{
			Name: "ReadTag",
			Args: map[string]any{"memoryBank": "epc", "tag": "E200"},
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
	if decoded.SessionID != "sess-1" {
		t.Errorf("session: got %q", decoded.SessionID)
	}
	if decoded.ReaderID == nil || *decoded.ReaderID != 1 {
		t.Errorf("reader: got %v", decoded.ReaderID)
	}
	if decoded.Command == nil {
		t.Fatal("command payload missing")
	}
	if decoded.Command.Name != "ReadTag" {
		t.Errorf("command name: got %q", decoded.Command.Name)
	}
	if decoded.Command.Args["tag"] != "E200" {
		t.Errorf("args: got %v", decoded.Command.Args)
	}
	if decoded.Result != nil || decoded.Callback != nil || decoded.Error != nil {
		t.Error("unexpected payloads set")
	}
}

func TestEventRoundTripResult(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		Direction: DirectionIn,
		Layer:     LayerFacade,
		Category:  CategoryResult,
		Result: &ResultEvent{
			Name:       "WriteTag",
			Status:     5,
			StatusName: "response_timeout",
			Message:    "no tag in field",
			Duration:   1500 * time.Millisecond,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Result == nil {
		t.Fatal("result payload missing")
	}
	if decoded.Result.OK() {
		t.Error("status 5 reported as OK")
	}
	if decoded.Result.Duration != 1500*time.Millisecond {
		t.Errorf("duration: got %v", decoded.Result.Duration)
	}
	if decoded.Result.Message != "no tag in field" {
		t.Errorf("message: got %q", decoded.Result.Message)
	}
	if decoded.ReaderID != nil {
		t.Errorf("reader should be omitted, got %v", *decoded.ReaderID)
	}
}

func TestEventRoundTripCallbackPayload(t *testing.T) {
	type battery struct {
		Level    int
		Charging bool
	}
	event := Event{
		Timestamp: time.Now(),
		Layer:     LayerBridge,
		Category:  CategoryCallback,
		Callback:  &CallbackEvent{Kind: "battery", Payload: battery{Level: 80, Charging: true}},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	payload, ok := decoded.Callback.Payload.(map[string]any)
	if !ok {
		t.Fatalf("payload type: got %T", decoded.Callback.Payload)
	}
	if payload["Charging"] != true {
		t.Errorf("payload: got %v", payload)
	}
	if decoded.Name() != "battery" {
		t.Errorf("Name(): got %q", decoded.Name())
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerFacade.String(), "FACADE"},
		{LayerBridge.String(), "BRIDGE"},
		{LayerService.String(), "SERVICE"},
		{Layer(9).String(), "UNKNOWN"},
		{CategoryCommand.String(), "COMMAND"},
		{CategoryResult.String(), "RESULT"},
		{CategoryCallback.String(), "CALLBACK"},
		{CategoryError.String(), "ERROR"},
		{Category(9).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
