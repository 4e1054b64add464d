package gpsshare

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Artiqlate/gpsshare/subsystems"
	"github.com/Artiqlate/gpsshare/utils"
)

const publishTimeout = 10 * time.Second

type ServerSignalChannels struct {
	progSignals chan os.Signal
	stop        chan struct{}
}

func NewServerSignalChannels() *ServerSignalChannels {
	return &ServerSignalChannels{
		progSignals: make(chan os.Signal, 1),
		stop:        make(chan struct{}),
	}
}

type ServerConfig struct {
	Port    uint16
	Backend subsystems.Backend
	Name    string
	Confirm bool
}

// ServerModule advertises the NMEA-0183 service once at startup and keeps
// the advertisement alive until interrupted.
type ServerModule struct {
	logf    func(string, ...interface{})
	nd      subsystems.NetworkDiscovery
	signals *ServerSignalChannels
}

func NewServerModule(cfg ServerConfig) (*ServerModule, error) {
	nd, ndErr := subsystems.NewNetworkDiscovery(subsystems.DiscoveryConfig{
		Backend: cfg.Backend,
		Name:    cfg.Name,
		Port:    cfg.Port,
		Confirm: cfg.Confirm,
	})
	if ndErr != nil {
		return nil, ndErr
	}
	return NewServerModuleWithDiscovery(nd), nil
}

func NewServerModuleWithDiscovery(nd subsystems.NetworkDiscovery) *ServerModule {
	return &ServerModule{
		logf:    utils.PrefixLogf("SRV"),
		nd:      nd,
		signals: NewServerSignalChannels(),
	}
}

func (s *ServerModule) setup() {
	signal.Notify(s.signals.progSignals, os.Interrupt, syscall.SIGTERM)
}

func (s *ServerModule) publish() error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	return s.nd.Publish(ctx)
}

func (s *ServerModule) routine() {
	select {
	case sig := <-s.signals.progSignals:
		s.logf("Stopping (%s)", sig)
	case <-s.signals.stop:
		s.logf("Stopping")
	}
}

func (s *ServerModule) shutdown() {
	signal.Stop(s.signals.progSignals)
	s.nd.Shutdown()
}

// Run publishes, then blocks until SIGINT, SIGTERM or Stop.
func (s *ServerModule) Run() error {
	s.setup()
	defer s.shutdown()

	if publishErr := s.publish(); publishErr != nil {
		s.logf("publish: %v", publishErr)
		return publishErr
	}
	s.logf("Service published")

	s.routine()
	return nil
}

// Stop makes Run return. It must be called at most once.
func (s *ServerModule) Stop() {
	close(s.signals.stop)
}
