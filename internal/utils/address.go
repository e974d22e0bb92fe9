package utils

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/sha3"
)

const (
	NetworkTRC20 = "TRC20"
	NetworkBEP20 = "BEP20"
)

const tronAddressVersion = 0x41

var trc20Pattern = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)

// IsValidAddress validates a destination address for the given rail network.
func IsValidAddress(network, address string) bool {
	switch strings.ToUpper(network) {
	case NetworkTRC20:
		return IsValidTRC20Address(address)
	case NetworkBEP20:
		return IsValidBEP20Address(address)
	}
	return false
}

// IsValidTRC20Address checks the base58 alphabet and the base58check checksum
// of a Tron address.
func IsValidTRC20Address(address string) bool {
	if !trc20Pattern.MatchString(address) {
		return false
	}
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return false
	}
	return version == tronAddressVersion && len(payload) == 20
}

// IsValidBEP20Address accepts all-lowercase or all-uppercase hex addresses and
// mixed-case addresses carrying a valid EIP-55 checksum.
func IsValidBEP20Address(address string) bool {
	if len(address) != 42 || !strings.HasPrefix(address, "0x") {
		return false
	}
	digits := address[2:]
	if _, err := hex.DecodeString(digits); err != nil {
		return false
	}
	lower := strings.ToLower(digits)
	if digits == lower || digits == strings.ToUpper(digits) {
		return true
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	for i, c := range digits {
		if c >= '0' && c <= '9' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		upper := c >= 'A' && c <= 'F'
		if (nibble >= 8) != upper {
			return false
		}
	}
	return true
}
