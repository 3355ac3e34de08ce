//go:build cgo

package bridge

/*
#include <stdlib.h>
#include "m5boot.h"
*/
import "C"

// The call* helpers invoke the exported symbols with C-typed arguments, as
// linked native code does.

func callLCDPrint(p []byte) {
	if len(p) == 0 {
		lcd_print(nil, 0)
		return
	}
	buf := C.CBytes(p)
	defer C.free(buf)
	lcd_print((*C.char)(buf), C.size_t(len(p)))
}

func callDrawLine(x0, y0, x1, y1 int32, color uint32) {
	m5display_drawLine(C.int32_t(x0), C.int32_t(y0), C.int32_t(x1), C.int32_t(y1), C.uint32_t(color))
}

// callWifiInitConfigDefault returns the struct fields in declaration order.
func callWifiInitConfigDefault() [16]int32 {
	var out C.m5_wifi_init_config_t
	m5_wifi_init_config_default(&out)
	return [16]int32{
		int32(out.static_rx_buf_num),
		int32(out.dynamic_rx_buf_num),
		int32(out.tx_buf_type),
		int32(out.static_tx_buf_num),
		int32(out.dynamic_tx_buf_num),
		int32(out.csi_enable),
		int32(out.ampdu_rx_enable),
		int32(out.ampdu_tx_enable),
		int32(out.nvs_enable),
		int32(out.nano_enable),
		int32(out.tx_ba_win),
		int32(out.rx_ba_win),
		int32(out.wifi_task_core_id),
		int32(out.beacon_max_len),
		int32(out.mgmt_sbuf_num),
		int32(out.magic),
	}
}

func callWifiInitConfigDefaultNil() {
	m5_wifi_init_config_default(nil)
}
