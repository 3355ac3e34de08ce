//go:build cgo

package bridge

/*
#include "m5boot.h"
*/
import "C"

import (
	"unsafe"

	"m5boot/platform"
)

//export lcd_print
func lcd_print(s *C.char, count C.size_t) {
	if b := Active(); b != nil {
		b.PrintRaw(unsafe.Pointer(s), uintptr(count))
	}
}

//export m5display_drawLine
func m5display_drawLine(x0, y0, x1, y1 C.int32_t, color C.uint32_t) {
	if b := Active(); b != nil {
		b.DrawLine(int32(x0), int32(y0), int32(x1), int32(y1), uint32(color))
	}
}

//export m5_wifi_init_config_default
func m5_wifi_init_config_default(out *C.m5_wifi_init_config_t) {
	if out == nil {
		return
	}
	c := platform.Default()
	*out = C.m5_wifi_init_config_t{
		static_rx_buf_num:  C.int32_t(c.StaticRxBufNum()),
		dynamic_rx_buf_num: C.int32_t(c.DynamicRxBufNum()),
		tx_buf_type:        C.int32_t(c.TxBufType()),
		static_tx_buf_num:  C.int32_t(c.StaticTxBufNum()),
		dynamic_tx_buf_num: C.int32_t(c.DynamicTxBufNum()),
		csi_enable:         C.int32_t(boolInt(c.CSIEnabled())),
		ampdu_rx_enable:    C.int32_t(boolInt(c.AMPDURxEnabled())),
		ampdu_tx_enable:    C.int32_t(boolInt(c.AMPDUTxEnabled())),
		nvs_enable:         C.int32_t(boolInt(c.NVSEnabled())),
		nano_enable:        C.int32_t(boolInt(c.NanoEnabled())),
		tx_ba_win:          C.int32_t(c.TxBAWin()),
		rx_ba_win:          C.int32_t(c.RxBAWin()),
		wifi_task_core_id:  C.int32_t(c.TaskCore()),
		beacon_max_len:     C.int32_t(c.BeaconMaxLen()),
		mgmt_sbuf_num:      C.int32_t(c.MgmtSbufNum()),
		magic:              C.int32_t(c.Magic()),
	}
}

func boolInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
