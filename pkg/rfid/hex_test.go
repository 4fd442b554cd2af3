package rfid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"00", 0, false},
		{"0", 0, false},
		{"12345678", 0x12345678, false},
		{"abc", 0xabc, false},
		{"ABCDEF", 0xabcdef, false},
		{"fff", 0xfff, false},
		{"-1", -1, false},
		{"", 0, true},
		{"0x10", 0, true},
		{"12G4", 0, true},
		{" 12", 0, true},
		{"1_0", 0, true},
		{"10000000000000000", 0, true}, // overflows int64
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := decodeHex(tt.in, "password")
			if tt.wantErr {
				var pe *ParameterError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "password", pe.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePasswordDefault(t *testing.T) {
	got, err := decodePassword("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestValidateHexText(t *testing.T) {
	assert.NoError(t, validateHexText("E2000017", "data"))
	assert.NoError(t, validateHexText("abc", "data"))

	for _, bad := range []string{"", "E200 0017", "0x12", "GG", "12-4"} {
		err := validateHexText(bad, "data")
		var pe *ParameterError
		if assert.ErrorAs(t, err, &pe, "input %q", bad) {
			assert.Equal(t, "data", pe.Name)
		}
	}
}

func TestAccessPasswordReachesSDK(t *testing.T) {
	m, api := newTestManager(t)

	api.On("KillTag", int32(1), "E200", mock.Anything, int64(0x12345678), mock.Anything).
		Return(sdk.ResultSuccess).Once()

	_, err := m.KillTag(1, KillRequest{Tag: TagByEPC("E200"), Password: "12345678"})
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestInvalidHexNeverCallsSDK(t *testing.T) {
	m, api := newTestManager(t)

	tests := []struct {
		name  string
		field string
		run   func() error
		call  string
	}{
		{
			name:  "read password",
			field: "password",
			call:  "ReadTag",
			run: func() error {
				_, err := m.ReadTag(1, ReadRequest{Tag: TagByEPC("E200"), MemoryBank: MemoryBankEPC, Length: 4, Password: "zz"})
				return err
			},
		},
		{
			name:  "write data",
			field: "data",
			call:  "WriteTag",
			run: func() error {
				_, err := m.WriteTag(1, WriteRequest{Tag: TagByEPC("E200"), MemoryBank: MemoryBankUser, Data: "12XY"})
				return err
			},
		},
		{
			name:  "write password by criteria",
			field: "password",
			call:  "WriteTagByCriteria",
			run: func() error {
				_, err := m.WriteTag(1, WriteRequest{Tag: TagByCriteria(AccessCriteria{}), Data: "1234", Password: "0x1"})
				return err
			},
		},
		{
			name:  "kill password",
			field: "password",
			call:  "KillTag",
			run: func() error {
				_, err := m.KillTag(1, KillRequest{Tag: TagByEPC("E200"), Password: "not hex"})
				return err
			},
		},
		{
			name:  "lock password",
			field: "password",
			call:  "LockTag",
			run: func() error {
				_, err := m.LockTag(1, LockRequest{Tag: TagByEPC("E200"), Password: "g"})
				return err
			},
		},
		{
			name:  "erase password",
			field: "password",
			call:  "BlockErase",
			run: func() error {
				_, err := m.BlockErase(1, BlockEraseRequest{Tag: TagByEPC("E200"), Password: "-"})
				return err
			},
		},
		{
			name:  "permalock mask",
			field: "blockMask",
			call:  "BlockPermaLock",
			run: func() error {
				_, err := m.BlockPermaLock(1, BlockPermaLockRequest{Tag: TagByEPC("E200"), BlockMask: "F0Q0"})
				return err
			},
		},
		{
			name:  "missing selector",
			field: "tag",
			call:  "ReadTag",
			run: func() error {
				_, err := m.ReadTag(1, ReadRequest{MemoryBank: MemoryBankEPC})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			var pe *ParameterError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tt.field, pe.Name)
			api.AssertNumberOfCalls(t, tt.call, 0)
		})
	}
}
