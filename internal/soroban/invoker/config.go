package invoker

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/txnbuild"
)

// Fee and timeout defaults for contract transactions.
const (
	DefaultElevatedFee  int64 = 100_000
	DefaultReadFee      int64 = txnbuild.MinBaseFee
	DefaultWriteTimeout       = 180 * time.Second
	DefaultReadTimeout        = 30 * time.Second
)

// Config is the immutable client configuration. Zero fees, timeouts and a nil Poll take
// the defaults above.
type Config struct {
	ContractID        string
	NetworkPassphrase string
	RPCURL            string
	HorizonURL        string
	ElevatedFee       int64
	ReadFee           int64
	WriteTimeout      time.Duration
	ReadTimeout       time.Duration
	Poll              PollPolicy
}

func (c Config) withDefaults() Config {
	if c.ElevatedFee == 0 {
		c.ElevatedFee = DefaultElevatedFee
	}
	if c.ReadFee == 0 {
		c.ReadFee = DefaultReadFee
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.Poll == nil {
		c.Poll = DefaultPollPolicy()
	}
	c.ContractID = strings.TrimSpace(c.ContractID)
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := strkey.Decode(strkey.VersionByteContract, c.ContractID); err != nil {
		return fmt.Errorf("contract id %q: %w", c.ContractID, err)
	}
	if c.NetworkPassphrase == "" {
		return fmt.Errorf("network passphrase is required")
	}
	if err := validateURL("rpc url", c.RPCURL); err != nil {
		return err
	}
	if err := validateURL("horizon url", c.HorizonURL); err != nil {
		return err
	}
	if c.ElevatedFee < txnbuild.MinBaseFee || c.ReadFee < txnbuild.MinBaseFee {
		return fmt.Errorf("fees must be at least %d stroops", txnbuild.MinBaseFee)
	}
	if c.WriteTimeout < time.Second || c.ReadTimeout < time.Second {
		return fmt.Errorf("timeouts must be at least one second")
	}
	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return nil
	}
	if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q is not an absolute url", name, raw)
	}
	return nil
}
