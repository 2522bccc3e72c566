package services

import (
	"fmt"
	"sync"
	"time"
)

var (
	codigoMu    sync.Mutex
	ultimaMarca int64
)

// siguienteMarca hands out strictly increasing millisecond marks, so two
// codes generated within the same millisecond never collide.
func siguienteMarca() int64 {
	codigoMu.Lock()
	defer codigoMu.Unlock()
	marca := time.Now().UnixMilli()
	if marca <= ultimaMarca {
		marca = ultimaMarca + 1
	}
	ultimaMarca = marca
	return marca
}

func NuevoCodigoReserva() string {
	return fmt.Sprintf("RES-%d", siguienteMarca())
}

func NuevoCodigoPago() string {
	return fmt.Sprintf("PAG-%d", siguienteMarca())
}
