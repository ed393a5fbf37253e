package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultBannerTTL es el tiempo que un mensaje permanece visible.
const DefaultBannerTTL = 3 * time.Second

// BannerKind distingue mensajes de error y de éxito.
type BannerKind int

const (
	BannerError BannerKind = iota
	BannerSuccess
)

func (k BannerKind) String() string {
	if k == BannerSuccess {
		return "success"
	}
	return "error"
}

// BannerMessage es el mensaje actualmente visible.
type BannerMessage struct {
	Kind    BannerKind
	Text    string
	ShownAt time.Time
}

// Banner implementa ports.Notifier: muestra un único mensaje a la vez y lo
// descarta tras ttl. Un mensaje nuevo reemplaza al anterior y reinicia el plazo.
type Banner struct {
	out io.Writer
	ttl time.Duration

	mu      sync.Mutex
	current *BannerMessage
	timer   *time.Timer
	seq     uint64
}

// NewBannerWriter crea un banner que escribe en w. ttl <= 0 usa DefaultBannerTTL.
func NewBannerWriter(w io.Writer, ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultBannerTTL
	}
	return &Banner{out: w, ttl: ttl}
}

// Error muestra un mensaje de validación o de fallo de cálculo.
func (b *Banner) Error(msg string) {
	b.show(BannerError, msg)
}

// Success muestra un mensaje de confirmación.
func (b *Banner) Success(msg string) {
	b.show(BannerSuccess, msg)
}

// Current devuelve el mensaje visible, si lo hay.
func (b *Banner) Current() (BannerMessage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return BannerMessage{}, false
	}
	return *b.current, true
}

// Close cancela el temporizador pendiente y limpia el mensaje.
func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.current = nil
}

func (b *Banner) show(kind BannerKind, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.seq++
	seq := b.seq
	b.current = &BannerMessage{Kind: kind, Text: msg, ShownAt: time.Now()}

	prefix := "!!"
	if kind == BannerSuccess {
		prefix = "OK"
	}
	fmt.Fprintf(b.out, "  %s %s\n", prefix, msg)

	b.timer = time.AfterFunc(b.ttl, func() { b.dismiss(seq) })
}

// dismiss solo limpia si el mensaje no fue reemplazado entretanto.
func (b *Banner) dismiss(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seq != seq {
		return
	}
	b.current = nil
	b.timer = nil
}
