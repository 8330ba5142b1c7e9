package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Config struct {
	DB *gorm.DB

	Prod_env bool

	PrivateKey string `toml:"private_key"` // admin access key for /admin routes

	// canonical "first" store, used by the resolver as the platform fallback
	// before the global default setting
	ReferenceStoreID string `toml:"reference_store_id"`

	Fees struct {
		Fixed   string `toml:"fixed"`   // e.g. "0.50"
		Percent string `toml:"percent"` // e.g. "3.00" meaning 3%

		FixedFee   decimal.Decimal `toml:"-"` // parsed from Fixed
		PercentFee decimal.Decimal `toml:"-"` // parsed from Percent
	} `toml:"fees"`

	Testing struct {
		Enabled bool
	} `toml:"testing"`

	Postgres struct {
		Host     string
		User     string
		Password string
		Db_name  string
		Port     uint16
		Ssl_mode string
	}
	Nats struct {
		Servers     string
		TomlServers []string `toml:"servers"`
	}
	Api struct {
		Ipv4  string
		Proto string
	} `toml:"payhub_web"`
}

func ReadConfig() *Config {
	byte_config, err := os.ReadFile(os.Getenv("CONFIG"))
	if err != nil {
		panic(err)
	}

	var config Config
	_, err = toml.Decode(string(byte_config), &config)
	if err != nil {
		panic(err)
	}

	user, err := os.ReadFile(os.Getenv("SECRETS") + "/nats-user.txt")
	if err != nil {
		panic(err)
	}

	pass, err := os.ReadFile(os.Getenv("SECRETS") + "/nats-password.txt")
	if err != nil {
		panic(err)
	}

	var formatedServers string
	for _, x := range config.Nats.TomlServers {
		connectUrl := fmt.Sprintf("nats://%s:%s@%s,", user, pass, string(x))
		formatedServers += connectUrl
	}

	config.Nats.Servers = formatedServers

	config.Fees.FixedFee, err = decimal.NewFromString(config.Fees.Fixed)
	if err != nil {
		panic("invalid fees.fixed: " + err.Error())
	}
	config.Fees.PercentFee, err = decimal.NewFromString(config.Fees.Percent)
	if err != nil {
		panic("invalid fees.percent: " + err.Error())
	}

	if config.Prod_env && config.Testing.Enabled {
		panic("cannot use testing in prod")
	}

	return &config
}
