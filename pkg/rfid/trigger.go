package rfid

import "github.com/Syfaro/ZebraRfid/pkg/sdk"

// StartTrigger decides when an inventory begins. It is either
// StartImmediate or StartOnHandheld.
type StartTrigger interface {
	isStartTrigger()
	toSDK() sdk.StartTriggerConfig
}

// StartImmediate starts the operation as soon as it is requested.
type StartImmediate struct{}

// StartOnHandheld waits for the handheld trigger.
type StartOnHandheld struct {
	Type             TriggerType
	Delay            uint32 // milliseconds
	RepeatMonitoring bool
}

func (StartImmediate) isStartTrigger()  {}
func (StartOnHandheld) isStartTrigger() {}

func (StartImmediate) toSDK() sdk.StartTriggerConfig {
	return sdk.StartTriggerConfig{}
}

func (t StartOnHandheld) toSDK() sdk.StartTriggerConfig {
	return sdk.StartTriggerConfig{
		StartOnHandheldTrigger: true,
		TriggerType:            uint32(t.Type),
		StartDelay:             t.Delay,
		RepeatMonitoring:       t.RepeatMonitoring,
	}
}

func startTriggerFromSDK(c sdk.StartTriggerConfig) StartTrigger {
	if !c.StartOnHandheldTrigger {
		return StartImmediate{}
	}
	return StartOnHandheld{
		Type:             TriggerType(c.TriggerType),
		Delay:            c.StartDelay,
		RepeatMonitoring: c.RepeatMonitoring,
	}
}

// StopTrigger decides when an inventory ends. It is either StopNone or
// StopOnHandheld.
type StopTrigger interface {
	isStopTrigger()
	toSDK() sdk.StopTriggerConfig
}

// StopNone runs the operation until it is stopped by command.
type StopNone struct{}

// StopOnHandheld stops on the handheld trigger, or earlier when one of the
// optional limits is reached.
type StopOnHandheld struct {
	Type           TriggerType
	TagCount       *uint32
	Timeout        *uint32 // milliseconds
	InventoryCount *uint32
	AccessCount    *uint32
}

func (StopNone) isStopTrigger()       {}
func (StopOnHandheld) isStopTrigger() {}

func (StopNone) toSDK() sdk.StopTriggerConfig {
	return sdk.StopTriggerConfig{}
}

func (t StopOnHandheld) toSDK() sdk.StopTriggerConfig {
	c := sdk.StopTriggerConfig{
		StopOnHandheldTrigger: true,
		TriggerType:           uint32(t.Type),
	}
	if t.TagCount != nil {
		c.StopOnTagCount = true
		c.StopTagCount = *t.TagCount
	}
	if t.Timeout != nil {
		c.StopOnTimeout = true
		c.StopTimeout = *t.Timeout
	}
	if t.InventoryCount != nil {
		c.StopOnInventoryCount = true
		c.StopInventoryCount = *t.InventoryCount
	}
	if t.AccessCount != nil {
		c.StopOnAccessCount = true
		c.StopAccessCount = *t.AccessCount
	}
	return c
}

func stopTriggerFromSDK(c sdk.StopTriggerConfig) StopTrigger {
	if !c.StopOnHandheldTrigger {
		return StopNone{}
	}
	t := StopOnHandheld{Type: TriggerType(c.TriggerType)}
	if c.StopOnTagCount {
		t.TagCount = ptr(c.StopTagCount)
	}
	if c.StopOnTimeout {
		t.Timeout = ptr(c.StopTimeout)
	}
	if c.StopOnInventoryCount {
		t.InventoryCount = ptr(c.StopInventoryCount)
	}
	if c.StopOnAccessCount {
		t.AccessCount = ptr(c.StopAccessCount)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}
