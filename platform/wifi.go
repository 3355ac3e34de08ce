// Package platform holds process-wide platform defaults.
package platform

import "sync"

// WifiInitConfig is the radio driver's default init configuration
// (ESP-IDF WIFI_INIT_CONFIG_DEFAULT). It is a value type with unexported
// fields: copies can be read but never written.
type WifiInitConfig struct {
	staticRxBufNum  int32
	dynamicRxBufNum int32
	txBufType       int32
	staticTxBufNum  int32
	dynamicTxBufNum int32
	csiEnable       bool
	ampduRxEnable   bool
	ampduTxEnable   bool
	nvsEnable       bool
	nanoEnable      bool
	txBAWin         int32
	rxBAWin         int32
	taskCore        int32
	beaconMaxLen    int32
	mgmtSbufNum     int32
	magic           int32
}

// WifiInitConfigMagic marks a valid config for the radio driver.
const WifiInitConfigMagic = 0x1F2F3F4F

var defaultWifi = sync.OnceValue(func() WifiInitConfig {
	return WifiInitConfig{
		staticRxBufNum:  10,
		dynamicRxBufNum: 32,
		txBufType:       1, // dynamic
		staticTxBufNum:  0,
		dynamicTxBufNum: 32,
		csiEnable:       false,
		ampduRxEnable:   true,
		ampduTxEnable:   true,
		nvsEnable:       true,
		nanoEnable:      false,
		txBAWin:         6,
		rxBAWin:         6,
		taskCore:        0,
		beaconMaxLen:    752,
		mgmtSbufNum:     32,
		magic:           WifiInitConfigMagic,
	}
})

// Default returns the process-wide default radio configuration. It is
// built on first use and identical for the life of the process.
func Default() WifiInitConfig {
	return defaultWifi()
}

func (c WifiInitConfig) StaticRxBufNum() int32  { return c.staticRxBufNum }
func (c WifiInitConfig) DynamicRxBufNum() int32 { return c.dynamicRxBufNum }
func (c WifiInitConfig) TxBufType() int32       { return c.txBufType }
func (c WifiInitConfig) StaticTxBufNum() int32  { return c.staticTxBufNum }
func (c WifiInitConfig) DynamicTxBufNum() int32 { return c.dynamicTxBufNum }
func (c WifiInitConfig) CSIEnabled() bool       { return c.csiEnable }
func (c WifiInitConfig) AMPDURxEnabled() bool   { return c.ampduRxEnable }
func (c WifiInitConfig) AMPDUTxEnabled() bool   { return c.ampduTxEnable }
func (c WifiInitConfig) NVSEnabled() bool       { return c.nvsEnable }
func (c WifiInitConfig) NanoEnabled() bool      { return c.nanoEnable }
func (c WifiInitConfig) TxBAWin() int32         { return c.txBAWin }
func (c WifiInitConfig) RxBAWin() int32         { return c.rxBAWin }
func (c WifiInitConfig) TaskCore() int32        { return c.taskCore }
func (c WifiInitConfig) BeaconMaxLen() int32    { return c.beaconMaxLen }
func (c WifiInitConfig) MgmtSbufNum() int32     { return c.mgmtSbufNum }
func (c WifiInitConfig) Magic() int32           { return c.magic }

// Valid reports whether the config carries the driver's magic word.
func (c WifiInitConfig) Valid() bool { return c.magic == WifiInitConfigMagic }
