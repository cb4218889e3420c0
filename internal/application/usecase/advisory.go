package usecase

import (
	"sync"
	"time"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
)

// advisoryTTL é o prazo de auto-dismissão de um aviso transitório.
const advisoryTTL = 2500 * time.Millisecond

// AdvisoryCenter mantém no máximo um aviso ativo por vez. Um aviso idêntico
// ao já ativo não é re-levantado (dedup por conteúdo); quando o conteúdo
// muda, o timer pendente é cancelado e reiniciado para que uma dismissão
// velha não dispare contra a mensagem nova.
type AdvisoryCenter struct {
	mu     sync.Mutex
	active *entity.Advisory
	timer  *time.Timer
	ttl    time.Duration
}

// NewAdvisoryCenter cria um novo AdvisoryCenter com o prazo padrão.
func NewAdvisoryCenter() *AdvisoryCenter {
	return &AdvisoryCenter{ttl: advisoryTTL}
}

// Raise ativa o aviso e agenda sua auto-dismissão. Devolve false quando o
// aviso idêntico já está ativo e foi suprimido.
func (c *AdvisoryCenter) Raise(a entity.Advisory) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil && *c.active == a {
		return false
	}
	if c.timer != nil {
		c.timer.Stop()
	}

	raised := a
	c.active = &raised
	c.timer = time.AfterFunc(c.ttl, func() {
		c.dismissIf(raised)
	})
	return true
}

// dismissIf limpa o aviso apenas se ele ainda for o ativo; um aviso mais
// novo já o substituiu caso contrário.
func (c *AdvisoryCenter) dismissIf(a entity.Advisory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && *c.active == a {
		c.active = nil
		c.timer = nil
	}
}

// Dismiss limpa o aviso ativo imediatamente (dismissão explícita).
func (c *AdvisoryCenter) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.active = nil
}

// Active devolve uma cópia do aviso corrente, ou nil quando não há nenhum.
func (c *AdvisoryCenter) Active() *entity.Advisory {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}
	current := *c.active
	return &current
}
