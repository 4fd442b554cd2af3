package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"time"

	"github.com/enbility/zeroconf/v3"
)

const (
	// ServiceTypeMQTT is the DNS-SD service type advertised by MQTT brokers.
	ServiceTypeMQTT = "_mqtt._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// BrowseTimeout is the default timeout for broker browsing.
	BrowseTimeout = 5 * time.Second
)

// ErrNoBroker is returned when no broker answered before the timeout.
var ErrNoBroker = errors.New("discovery: no MQTT broker found")

// Broker is a resolved MQTT broker announcement.
type Broker struct {
	Instance  string
	Host      string
	Port      uint16
	Addresses []string
}

// URL returns the broker URL, preferring the first resolved address over
// the host name.
func (b Broker) URL() string {
	host := b.Host
	if len(b.Addresses) > 0 {
		host = b.Addresses[0]
	}
	return "tcp://" + net.JoinHostPort(host, strconv.Itoa(int(b.Port)))
}

// BrowserConfig configures broker browsing.
type BrowserConfig struct {
	// Timeout bounds BrowseBrokers and FirstBroker. Default: 5 seconds.
	Timeout time.Duration

	// Interface restricts browsing to one network interface.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{Timeout: BrowseTimeout}
}

// browse is replaced in tests.
var browse = func(ctx context.Context, service, domain string, entries, removed chan<- *zeroconf.ServiceEntry, opts ...zeroconf.ClientOption) error {
	return zeroconf.Browse(ctx, service, domain, entries, removed, opts...)
}

// BrowseBrokers collects every broker announced before the timeout or ctx
// ends. Announcements from several interfaces are merged by instance name.
func BrowseBrokers(ctx context.Context, cfg BrowserConfig) ([]Broker, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	brokers := make(map[string]*Broker)
	err := run(ctx, cfg, func(b Broker) bool {
		if existing, ok := brokers[b.Instance]; ok {
			existing.Addresses = mergeAddresses(existing.Addresses, b.Addresses)
			return true
		}
		brokers[b.Instance] = &b
		return true
	})
	if err != nil {
		return nil, err
	}

	out := make([]Broker, 0, len(brokers))
	for _, b := range brokers {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instance < out[j].Instance })
	return out, nil
}

// FirstBroker returns the URL of the first broker that resolves.
func FirstBroker(ctx context.Context, cfg BrowserConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	var found *Broker
	err := run(ctx, cfg, func(b Broker) bool {
		if b.Port == 0 || (b.Host == "" && len(b.Addresses) == 0) {
			return true
		}
		found = &b
		return false
	})
	if err != nil {
		return "", err
	}
	if found == nil {
		return "", ErrNoBroker
	}
	return found.URL(), nil
}

// run browses until ctx ends or fn returns false.
func run(ctx context.Context, cfg BrowserConfig, fn func(Broker) bool) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	errCh := make(chan error, 1)
	go func() {
		errCh <- browse(ctx, ServiceTypeMQTT, Domain, entries, removed, opts...)
	}()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			if !fn(entryToBroker(entry)) {
				return nil
			}
		case <-removed:
		case err := <-errCh:
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("browse %s: %w", ServiceTypeMQTT, err)
			}
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (c BrowserConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return BrowseTimeout
	}
	return c.Timeout
}

func (c BrowserConfig) options() ([]zeroconf.ClientOption, error) {
	if c.Interface == "" {
		return nil, nil
	}
	iface, err := net.InterfaceByName(c.Interface)
	if err != nil {
		return nil, fmt.Errorf("interface %q: %w", c.Interface, err)
	}
	return []zeroconf.ClientOption{zeroconf.SelectIfaces([]net.Interface{*iface})}, nil
}

func entryToBroker(entry *zeroconf.ServiceEntry) Broker {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return Broker{
		Instance:  entry.Instance,
		Host:      entry.HostName,
		Port:      uint16(entry.Port),
		Addresses: addrs,
	}
}

// mergeAddresses adds new addresses to existing, skipping duplicates.
func mergeAddresses(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range add {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}
