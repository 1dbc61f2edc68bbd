// Package domain contains the core model for teensyflash.
//
// The domain is process- and filesystem-agnostic: it does not depend on os/exec,
// serial ports or the Intel HEX parser. Infra/adapters map into/from these types.
package domain
