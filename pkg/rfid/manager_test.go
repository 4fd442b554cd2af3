package rfid

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

const testEPC = "E20000172211014418901234"

func TestReadTagEndToEnd(t *testing.T) {
	m, api := newTestManager(t)

	api.On("ReadTag", int32(1), testEPC, mock.Anything, uint32(MemoryBankEPC), int16(0), int16(4), int64(0), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*sdk.TagData) = sdk.TagData{
				TagID:            testEPC,
				OpCode:           &sdk.AccessOperationCode{Name: "READ", Ordinal: uint32(AccessOperationCodeRead)},
				OperationSucceed: true,
				MemoryBank:       uint32(MemoryBankEPC),
				MemoryBankData:   "3000E200",
			}
		}).
		Return(sdk.ResultSuccess).Once()

	tag, err := m.ReadTag(1, ReadRequest{
		Tag:        TagByEPC(testEPC),
		MemoryBank: MemoryBankEPC,
		Length:     4,
		Password:   "00",
	})
	require.NoError(t, err)
	assert.Equal(t, testEPC, tag.EPC)
	assert.Equal(t, "3000E200", tag.MemoryBankData)
	require.NotNil(t, tag.MemoryBank)
	assert.Equal(t, MemoryBankEPC, *tag.MemoryBank)
	api.AssertExpectations(t)
}

func TestReadTagByCriteria(t *testing.T) {
	m, api := newTestManager(t)

	criteria := AccessCriteria{Filter1: &TagFilter{MemoryBank: MemoryBankEPC, StartPosition: 32, Data: "E200", Mask: "FFFF", MatchLength: 16, DoMatch: true}}
	api.On("ReadTagByCriteria", int32(2), criteria.toSDK(), mock.Anything, uint32(MemoryBankUser), int16(2), int16(8), int64(0xABCD), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*sdk.TagData) = sdk.TagData{TagID: testEPC, MemoryBankData: "0011"}
		}).
		Return(sdk.ResultSuccess).Once()

	tag, err := m.ReadTag(2, ReadRequest{
		Tag:        TagByCriteria(criteria),
		MemoryBank: MemoryBankUser,
		Offset:     2,
		Length:     8,
		Password:   "ABCD",
	})
	require.NoError(t, err)
	assert.Equal(t, "0011", tag.MemoryBankData)
	api.AssertExpectations(t)
	api.AssertNotCalled(t, "ReadTag", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccessRejectsMissingSelector(t *testing.T) {
	m, api := newTestManager(t)

	_, err := m.LockTag(1, LockRequest{MemoryBank: MemoryBankUser, Permission: AccessPermissionSecured})
	var perr *ParameterError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "tag", perr.Name)
	api.AssertNumberOfCalls(t, "LockTag", 0)
}

func TestWriteTagPassesDataThrough(t *testing.T) {
	m, api := newTestManager(t)

	api.On("WriteTag", int32(1), testEPC, mock.Anything, uint32(MemoryBankUser), int16(0), "DEADBEEF", int64(0), true, mock.Anything).
		Return(sdk.ResultSuccess).Once()

	_, err := m.WriteTag(1, WriteRequest{
		Tag:        TagByEPC(testEPC),
		MemoryBank: MemoryBankUser,
		Data:       "DEADBEEF",
		BlockWrite: true,
	})
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestBlockPermaLockValidatesMask(t *testing.T) {
	m, api := newTestManager(t)

	_, err := m.BlockPermaLock(1, BlockPermaLockRequest{
		Tag:        TagByEPC(testEPC),
		MemoryBank: MemoryBankUser,
		Lock:       true,
		BlockRange: 1,
		BlockMask:  "zz",
	})
	var perr *ParameterError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "blockMask", perr.Name)
	api.AssertNumberOfCalls(t, "BlockPermaLock", 0)
}

func TestAccessOperationFailure(t *testing.T) {
	m, api := newTestManager(t)

	api.On("BlockErase", int32(1), testEPC, mock.Anything, uint32(MemoryBankUser), int16(0), int16(2), int64(0), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*sdk.TagData) = sdk.TagData{
				TagID:            testEPC,
				OpCode:           &sdk.AccessOperationCode{Name: "BLOCK_ERASE", Ordinal: uint32(AccessOperationCodeBlockErase)},
				OperationSucceed: false,
				OperationStatus:  "memory locked",
			}
		}).
		Return(sdk.ResultSuccess).Once()

	_, err := m.BlockErase(1, BlockEraseRequest{Tag: TagByEPC(testEPC), MemoryBank: MemoryBankUser, Length: 2})
	var oerr *OperationError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, AccessOperationCodeBlockErase, oerr.Operation.Code)
	assert.Equal(t, "memory locked", oerr.Status)
}

func TestAccessOperationNoneIsNotFailure(t *testing.T) {
	m, api := newTestManager(t)

	api.On("KillTag", int32(1), testEPC, mock.Anything, int64(0), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*sdk.TagData) = sdk.TagData{
				TagID:  testEPC,
				OpCode: &sdk.AccessOperationCode{Name: "NONE", Ordinal: uint32(AccessOperationCodeNone)},
			}
		}).
		Return(sdk.ResultSuccess).Once()

	_, err := m.KillTag(1, KillRequest{Tag: TagByEPC(testEPC)})
	assert.NoError(t, err)
}

func TestStartTwice(t *testing.T) {
	m, api := newTestManager(t)
	startManager(t, m, api)

	assert.ErrorIs(t, m.Start(), ErrAlreadyStarted)
	api.AssertNumberOfCalls(t, "SetDelegate", 1)
}

func TestStartFailureAllowsRetry(t *testing.T) {
	m, api := newTestManager(t)

	api.On("SetDelegate", mock.Anything).Return(sdk.ResultFailure).Once()
	assert.Error(t, m.Start())

	startManager(t, m, api)
}

func TestClosedManager(t *testing.T) {
	m, api := newTestManager(t)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.ErrorIs(t, m.Start(), ErrClosed)
	assert.ErrorIs(t, m.EstablishSession(1), ErrClosed)
	assert.ErrorIs(t, m.StopInventory(1), ErrClosed)

	_, err := m.ReadTag(1, ReadRequest{Tag: TagByEPC(testEPC)})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = m.SDKVersion()
	assert.ErrorIs(t, err, ErrClosed)

	sub, err := m.Events()
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, ErrClosed)

	assert.Empty(t, api.Calls)
}

func TestCommandsWithoutStart(t *testing.T) {
	m, api := newTestManager(t)

	api.On("SDKVersion").Return("2.0.3.162").Once()
	api.On("EstablishCommunicationSession", int32(4)).Return(sdk.ResultSuccess).Once()

	version, err := m.SDKVersion()
	require.NoError(t, err)
	assert.Equal(t, "2.0.3.162", version)
	assert.NoError(t, m.EstablishSession(4))
	api.AssertExpectations(t)
}

func TestAvailableReaders(t *testing.T) {
	m, api := newTestManager(t)

	api.On("GetAvailableReadersList", mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(0).(*[]sdk.ReaderInfo) = []sdk.ReaderInfo{
			{ReaderID: 1, ConnectionType: 2, ReaderName: "RFD40"},
			{ReaderID: 2, ConnectionType: 7, ReaderName: "odd"},
		}
	}).Return(sdk.ResultSuccess).Once()

	readers, err := m.AvailableReaders()
	require.NoError(t, err)
	require.Len(t, readers, 2)
	assert.Equal(t, ReaderInfo{ID: 1, ConnectionType: ConnectionTypeBTLE, Name: "RFD40"}, readers[0])
	assert.Equal(t, ConnectionTypeInvalid, readers[1].ConnectionType)
}

func TestSubscribePassesMask(t *testing.T) {
	m, api := newTestManager(t)

	mask := EventMaskRead | EventMaskStatus
	api.On("SubscribeForEvents", int32(mask)).Return(sdk.ResultSuccess).Once()
	api.On("UnsubscribeForEvents", int32(EventMaskAll)).Return(sdk.ResultSuccess).Once()

	assert.NoError(t, m.Subscribe(mask))
	assert.NoError(t, m.Unsubscribe(EventMaskAll))
	api.AssertExpectations(t)
}

func TestAccessWaitTimeoutInMilliseconds(t *testing.T) {
	m, api := newTestManager(t)

	api.On("SetAccessCommandOperationWaitTimeout", int32(1), int32(1500)).Return(sdk.ResultSuccess).Once()
	assert.NoError(t, m.SetAccessOperationWaitTimeout(1, 1500*time.Millisecond))
	api.AssertExpectations(t)
}

func TestAccessWaitTimeoutOutOfRange(t *testing.T) {
	m, api := newTestManager(t)

	for _, timeout := range []time.Duration{-time.Millisecond, (math.MaxInt32 + 1) * time.Millisecond} {
		err := m.SetAccessOperationWaitTimeout(1, timeout)
		var perr *ParameterError
		require.ErrorAs(t, err, &perr, "timeout %s", timeout)
		assert.Equal(t, "timeout", perr.Name)
	}
	api.AssertNotCalled(t, "SetAccessCommandOperationWaitTimeout", mock.Anything, mock.Anything)
}

func TestConfigGetters(t *testing.T) {
	m, api := newTestManager(t)

	api.On("GetAntennaConfiguration", int32(1), mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*sdk.AntennaConfiguration) = sdk.AntennaConfiguration{Power: 270, LinkProfileIdx: 2, DoSelect: true}
	}).Return(sdk.ResultSuccess).Once()

	antenna, err := m.AntennaConfig(1)
	require.NoError(t, err)
	assert.Equal(t, AntennaConfig{Power: 270, LinkProfileIndex: 2, Select: true}, antenna)

	api.On("GetStartTriggerConfiguration", int32(1), mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*sdk.StartTriggerConfig) = sdk.StartTriggerConfig{StartOnHandheldTrigger: true, TriggerType: uint32(TriggerTypePress)}
	}).Return(sdk.ResultSuccess).Once()

	start, err := m.StartTrigger(1)
	require.NoError(t, err)
	assert.Equal(t, StartOnHandheld{Type: TriggerTypePress}, start)

	api.On("GetRegionInfo", int32(1), "USA", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*[]string) = []string{"902750", "903250"}
		*args.Get(3).(*bool) = true
	}).Return(sdk.ResultSuccess).Once()

	region, err := m.RegionInfo(1, "USA")
	require.NoError(t, err)
	assert.Equal(t, RegionInfo{Channels: []string{"902750", "903250"}, HoppingConfigurable: true}, region)
}

func TestConfigGetterFailureReturnsZeroValue(t *testing.T) {
	m, api := newTestManager(t)

	api.On("GetAntennaConfiguration", int32(1), mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*sdk.AntennaConfiguration) = sdk.AntennaConfiguration{Power: 99}
		setStatus(2, "reader busy")(args)
	}).Return(sdk.ResultResponseError).Once()

	antenna, err := m.AntennaConfig(1)
	assert.Equal(t, AntennaConfig{}, antenna)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "reader busy", serr.Message)
}

func TestSetTriggers(t *testing.T) {
	m, api := newTestManager(t)

	stop := StopOnHandheld{Type: TriggerTypeRelease, Timeout: ptr[uint32](3000)}
	api.On("SetStopTriggerConfiguration", int32(1), stop.toSDK(), mock.Anything).Return(sdk.ResultSuccess).Once()
	assert.NoError(t, m.SetStopTrigger(1, stop))

	var perr *ParameterError
	assert.ErrorAs(t, m.SetStartTrigger(1, nil), &perr)
	assert.ErrorAs(t, m.SetStopTrigger(1, nil), &perr)
	api.AssertNumberOfCalls(t, "SetStartTriggerConfiguration", 0)
	api.AssertExpectations(t)
}

func TestManagerTracesCommands(t *testing.T) {
	rec := &traceRecorder{}
	api := &stubAPI{}
	m := NewManager(api, Config{SessionID: "trace-session", TraceLogger: rec})
	t.Cleanup(func() { m.Close() })

	api.On("KillTag", int32(1), testEPC, mock.Anything, int64(0x1234), mock.Anything).
		Run(setStatus(4, "tag not found")).
		Return(sdk.ResultFailure).Once()

	_, err := m.KillTag(1, KillRequest{Tag: TagByEPC(testEPC), Password: "1234"})
	require.Error(t, err)

	events := rec.Events()
	require.Len(t, events, 2)

	cmd := events[0]
	assert.Equal(t, log.CategoryCommand, cmd.Category)
	assert.Equal(t, log.DirectionOut, cmd.Direction)
	require.NotNil(t, cmd.Command)
	assert.Equal(t, "KillTag", cmd.Command.Name)
	assert.Equal(t, testEPC, cmd.Command.Args["tag"])
	for _, v := range cmd.Command.Args {
		assert.NotEqual(t, "1234", v)
	}

	res := events[1]
	assert.Equal(t, log.CategoryResult, res.Category)
	require.NotNil(t, res.Result)
	assert.Equal(t, "KillTag", res.Result.Name)
	assert.Equal(t, uint32(sdk.ResultFailure), res.Result.Status)
	assert.Equal(t, "tag not found", res.Result.Message)
	assert.False(t, res.Result.OK())
}

func TestManagerTracesRejections(t *testing.T) {
	rec := &traceRecorder{}
	m := NewManager(&stubAPI{}, Config{TraceLogger: rec})
	t.Cleanup(func() { m.Close() })

	_, err := m.ReadTag(3, ReadRequest{Tag: TagByEPC(testEPC), Password: "xyz"})
	require.Error(t, err)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, log.CategoryError, events[0].Category)
	require.NotNil(t, events[0].Error)
	assert.Equal(t, "ReadTag", events[0].Error.Context)
	assert.NotEmpty(t, m.SessionID())
	assert.Equal(t, m.SessionID(), events[0].SessionID)
}

func TestEventsAfterStartFlowThroughManager(t *testing.T) {
	m, api := newTestManager(t)
	d := startManager(t, m, api)

	sub, err := m.Events()
	require.NoError(t, err)

	api.On("StartInventory", int32(1), uint32(MemoryBankNone), mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			d.EventStatusNotify(1, uint32(EventStatusOperationStart), nil)
			d.EventReadNotify(1, sdk.TagData{TagID: testEPC})
		}).
		Return(sdk.ResultSuccess).Once()

	require.NoError(t, m.StartInventory(1, MemoryBankNone, ReportConfig{RSSI: true}, AccessConfig{}))

	got := collect(t, sub, 2)
	assert.Equal(t, KindStatus, got[0].Kind())
	assert.Equal(t, KindRead, got[1].Kind())
}
