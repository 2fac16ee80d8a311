package mqtt

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	coremqtt "github.com/kilianp07/batterycf/core/mqtt"
	"github.com/kilianp07/batterycf/infra/logger"
)

const (
	defaultTopic      = "battery/cashflow/results"
	defaultMaxRetries = 3
	defaultBackoff    = 100 * time.Millisecond
	defaultTimeout    = 5 * time.Second
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Enabled    bool        `json:"enabled"`
	Broker     string      `json:"broker"`
	ClientID   string      `json:"client_id"`
	Username   string      `json:"username"`
	Password   string      `json:"password"`
	Topic      string      `json:"topic"`
	QoS        byte        `json:"qos"`
	Retained   bool        `json:"retained"`
	UseTLS     bool        `json:"use_tls"`
	ClientCert string      `json:"client_cert"`
	ClientKey  string      `json:"client_key"`
	CABundle   string      `json:"ca_bundle"`
	LWTTopic   string      `json:"lwt_topic"`
	LWTPayload string      `json:"lwt_payload"`
	MaxRetries int         `json:"max_retries"`
	BackoffMS  int         `json:"backoff_ms"`
	TimeoutMS  int         `json:"timeout_ms"`
	TLSConfig  *tls.Config `json:"-"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Topic == "" {
		c.Topic = defaultTopic
	}
	if c.ClientID == "" {
		c.ClientID = "batterycf-" + uuid.NewString()[:8]
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.BackoffMS <= 0 {
		c.BackoffMS = int(defaultBackoff / time.Millisecond)
	}
	if c.TimeoutMS <= 0 {
		c.TimeoutMS = int(defaultTimeout / time.Millisecond)
	}
}

// Validate checks the section when publishing is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	var errs []error
	if c.Broker == "" {
		errs = append(errs, errors.New("mqtt.broker is required"))
	}
	if c.QoS > 2 {
		errs = append(errs, fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.QoS))
	}
	if c.UseTLS && c.TLSConfig == nil && (c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "") {
		errs = append(errs, errors.New("mqtt.use_tls requires client_cert, client_key and ca_bundle"))
	}
	return errors.Join(errs...)
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// PahoClient publishes evaluation results using Eclipse Paho.
type PahoClient struct {
	cli        pahoClient
	topic      string
	qos        byte
	retained   bool
	maxRetries int
	backoff    time.Duration
	timeout    time.Duration
	logger     logger.Logger
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// NewPahoClient connects to the MQTT broker.
func NewPahoClient(cfg Config) (*PahoClient, error) {
	cfg.SetDefaults()
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.New("mqtt_client")
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected to %s", cfg.Broker)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(paho.Client, *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	pc := &PahoClient{
		topic:      cfg.Topic,
		qos:        cfg.QoS,
		retained:   cfg.Retained,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		timeout:    time.Duration(cfg.TimeoutMS) * time.Millisecond,
		logger:     log,
	}
	c := newMQTTClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(pc.timeout) {
		c.Disconnect(0)
		return nil, fmt.Errorf("connect to %s: timed out after %s", cfg.Broker, pc.timeout)
	}
	if err := token.Error(); err != nil {
		c.Disconnect(0)
		return nil, fmt.Errorf("connect to %s: %w", cfg.Broker, err)
	}
	pc.cli = c
	return pc, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if cfg.LWTTopic != "" {
		opts.SetWill(cfg.LWTTopic, cfg.LWTPayload, cfg.QoS, true)
	}
	return opts, nil
}

// LoadTLSConfig loads the TLS configuration from the file paths in the config.
func (c Config) LoadTLSConfig() (*tls.Config, error) {
	if c.TLSConfig != nil {
		return c.TLSConfig, nil
	}
	if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
		return nil, fmt.Errorf("tls config requires client_cert, client_key and ca_bundle")
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load cert: %w", err)
	}
	caBytes, err := os.ReadFile(c.CABundle)
	if err != nil {
		return nil, fmt.Errorf("read ca: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caBytes) {
		return nil, fmt.Errorf("ca bundle %s contains no certificates", c.CABundle)
	}
	return &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

// Publish sends msg as JSON on the configured topic. Failed attempts are
// retried with exponential backoff.
func (p *PahoClient) Publish(ctx context.Context, msg coremqtt.ResultMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	var publishErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if !p.cli.IsConnected() {
			publishErr = coremqtt.ErrNotConnected
		} else {
			publishErr = p.publishOnce(payload)
		}
		if publishErr == nil {
			p.logger.Infof("published run %s to %s", msg.RunID, p.topic)
			return nil
		}
		p.logger.Errorf("publish attempt %d failed: %v", attempt+1, publishErr)
		if attempt == p.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Join(publishErr, ctx.Err())
		case <-time.After(p.backoff * time.Duration(1<<attempt)):
		}
	}
	return fmt.Errorf("publish run %s: %w", msg.RunID, publishErr)
}

func (p *PahoClient) publishOnce(payload []byte) error {
	token := p.cli.Publish(p.topic, p.qos, p.retained, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish timed out after %s", p.timeout)
	}
	return token.Error()
}

// Close gracefully closes the MQTT connection.
func (p *PahoClient) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
