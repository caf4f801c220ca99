package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"user_center/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

// NewID returns a log id: millis(base36) + host ipv4(hex) + pid + random(base36).
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(maxSize, stop),
		stop: stop,
	}
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

func (idgen *IDGenerator) NewID() string {
	return <-idgen.pool
}

func newPool(size int, stop <-chan struct{}) <-chan string {
	pool := make(chan string, size)
	host := ip.IPv4Hex() + strconv.FormatUint(uint64(os.Getpid()), 10)

	go func() {
		defer close(pool)
		for {
			sb := strings.Builder{}
			sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
			sb.WriteString(host)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
