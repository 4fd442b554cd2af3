// Package service runs the RFID bridge.
//
// BridgeService ties a Manager to the rest of the stack. Each configured
// reader gets a connection.Keeper that holds its session. Every event goes
// to a transport.Publisher, and tag reads go to the persistence journal.
//
// Example usage:
//
//	mgr := rfid.NewManager(api, rfid.Config{Logger: logger})
//	defer mgr.Close()
//
//	svc := service.NewBridgeService(mgr, publisher, store, service.Config{
//		Readers:   []service.ReaderConfig{{ID: 1, AutoReconnect: true}},
//		EventMask: rfid.EventMaskAll,
//	})
//	if err := svc.Start(ctx); err != nil {
//		return err
//	}
//	defer svc.Stop()
//
// The service owns none of the Manager, Publisher or Store. Callers close
// them after Stop.
package service
