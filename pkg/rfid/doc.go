// Package rfid exposes a Zebra handheld RFID reader SDK through typed
// commands and a fan-out event stream.
//
// A Manager owns one sdk.API handle. Every command method encodes its typed
// arguments, makes exactly one vendor call, decodes the out-parameters and
// maps a non-success result into one of the error types in this package:
//
//	mgr := rfid.NewManager(api, rfid.Config{Logger: slog.Default()})
//	if err := mgr.Start(); err != nil {
//		return err
//	}
//	defer mgr.Close()
//
//	tag, err := mgr.ReadTag(1, rfid.ReadRequest{
//		Tag:        rfid.TagByEPC("E2000017221101441890"),
//		MemoryBank: rfid.MemoryBankEPC,
//		Length:     4,
//	})
//
// Start registers the delegate bridge with the SDK. Callbacks are
// translated into Event values and published, in invocation order, to every
// subscription returned by Events:
//
//	sub, _ := mgr.Events()
//	defer sub.Cancel()
//	for ev := range sub.C() {
//		if read, ok := ev.(rfid.TagRead); ok {
//			fmt.Println(read.Tag.EPC)
//		}
//	}
//
// Commands are synchronous and serialised on the SDK handle. Callbacks never
// take the command lock, so a vendor that notifies from inside a command
// cannot deadlock the Manager.
package rfid

//go:generate go run ../../cmd/rfid-enumgen -input enums.yaml -output enums_gen.go -package rfid
