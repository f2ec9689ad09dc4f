package config

// ConfigProvider defines the interface for configuration access
type ConfigProvider interface {
	GetServer() string
	GetPort() int
	GetSender() string
	GetPassword() string
	GetRecipient() string
}

// ConfigImpl implements ConfigProvider interface
type ConfigImpl struct {
	cfg *Config
}

// NewConfigProvider creates a new ConfigProvider instance
func NewConfigProvider(cfg *Config) ConfigProvider {
	return &ConfigImpl{cfg: cfg}
}

func (c *ConfigImpl) GetServer() string {
	return c.cfg.Server
}

func (c *ConfigImpl) GetPort() int {
	return c.cfg.Port
}

func (c *ConfigImpl) GetSender() string {
	return c.cfg.Sender
}

func (c *ConfigImpl) GetPassword() string {
	return c.cfg.Password
}

func (c *ConfigImpl) GetRecipient() string {
	return c.cfg.Recipient
}
