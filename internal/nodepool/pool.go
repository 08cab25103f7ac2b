// Package nodepool implements failover across an ordered list of chain RPC
// endpoints.
//
// The pool keeps a rotation cursor over its nodes. Every failed request
// (network error, non-2xx status, malformed JSON, JSON-RPC error object or
// empty result) advances the cursor to the next node, round-robin, and the
// request is retried there. A single request gives up after twice the number
// of nodes. Nodes are not ranked by latency; priority only decides the
// initial order.
package nodepool

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/txtracker/internal/pkg/logger"
	transporthttp "github.com/gabapcia/txtracker/internal/pkg/transport/http"
	"github.com/gabapcia/txtracker/internal/pkg/transport/jsonrpc"
)

var (
	// ErrNoNodes is returned by New when no node is configured.
	ErrNoNodes = errors.New("node pool has no nodes")

	// ErrAllAttemptsFailed wraps the last node error once a call has used
	// up every attempt.
	ErrAllAttemptsFailed = errors.New("all node attempts failed")
)

// defaultEndpointPath is appended to each node URL.
const defaultEndpointPath = "/jsonrpc"

// Node describes one chain RPC endpoint.
type Node struct {
	Name     string        `yaml:"name" validate:"required"`
	URL      string        `yaml:"url" validate:"required,url"`
	APIKey   string        `yaml:"api_key"`
	Priority int           `yaml:"priority"`
	Timeout  time.Duration `yaml:"timeout"`
}

// NodeHealth is a point-in-time view of a node's request history.
type NodeHealth struct {
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Current    bool       `json:"current"`
	Successes  uint64     `json:"successes"`
	Failures   uint64     `json:"failures"`
	LastError  string     `json:"last_error,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

type member struct {
	node   Node
	client jsonrpc.Client

	successes  uint64
	failures   uint64
	lastError  string
	lastUsedAt *time.Time
}

// Pool is an ordered set of nodes with a rotation cursor. It is safe for
// concurrent use.
type Pool struct {
	mu      sync.Mutex
	members []*member
	cursor  int
}

var _ jsonrpc.Client = (*Pool)(nil)

// ClientFactory builds the JSON-RPC client for a node.
type ClientFactory func(node Node) jsonrpc.Client

type config struct {
	endpointPath  string
	clientFactory ClientFactory
}

// Option configures a Pool.
type Option func(*config)

// WithEndpointPath overrides the path appended to every node URL.
// Default: "/jsonrpc".
func WithEndpointPath(path string) Option {
	return func(c *config) {
		c.endpointPath = path
	}
}

// WithClientFactory overrides how node clients are built.
func WithClientFactory(f ClientFactory) Option {
	return func(c *config) {
		c.clientFactory = f
	}
}

// New builds a Pool ordered by ascending priority. Nodes with equal priority
// keep their configured order.
//
// By default each node gets a JSON-RPC client targeting <url><path>, sending
// its API key as a bearer token, with the node timeout and no
// transport-level retries.
func New(nodes []Node, opts ...Option) (*Pool, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	cfg := config{endpointPath: defaultEndpointPath}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.clientFactory == nil {
		cfg.clientFactory = defaultClientFactory(cfg.endpointPath)
	}

	ordered := slices.Clone(nodes)
	slices.SortStableFunc(ordered, func(a, b Node) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	members := make([]*member, len(ordered))
	for i, node := range ordered {
		members[i] = &member{node: node, client: cfg.clientFactory(node)}
	}

	return &Pool{members: members}, nil
}

func defaultClientFactory(path string) ClientFactory {
	return func(node Node) jsonrpc.Client {
		httpOpts := []transporthttp.Option{transporthttp.WithRetryMax(0)}
		if node.Timeout > 0 {
			httpOpts = append(httpOpts, transporthttp.WithTimeout(node.Timeout))
		}

		return jsonrpc.NewClient(
			strings.TrimRight(node.URL, "/")+path,
			jsonrpc.WithBearerToken(node.APIKey),
			jsonrpc.WithHTTPOptions(httpOpts...),
		)
	}
}

// Len returns the number of nodes in the pool.
func (p *Pool) Len() int {
	return len(p.members)
}

// MaxAttempts is the number of attempts a single Fetch makes before giving up.
func (p *Pool) MaxAttempts() int {
	return len(p.members) * 2
}

// Current returns the node the next request will be sent to.
func (p *Pool) Current() Node {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.members[p.cursor].node
}

// Rotate advances the cursor to the next node, wrapping around.
func (p *Pool) Rotate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rotateLocked()
}

func (p *Pool) rotateLocked() {
	p.cursor = (p.cursor + 1) % len(p.members)
}

func (p *Pool) current() *member {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.members[p.cursor]
}

func (p *Pool) recordSuccess(m *member) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UTC()
	m.successes++
	m.lastUsedAt = &now
}

// recordFailure stores err against m and rotates away from it, unless
// another caller already moved the cursor.
func (p *Pool) recordFailure(m *member, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UTC()
	m.failures++
	m.lastError = err.Error()
	m.lastUsedAt = &now

	if p.members[p.cursor] == m {
		p.rotateLocked()
	}
}

// Fetch sends a JSON-RPC request to the current node, failing over to the
// following nodes until one succeeds or MaxAttempts is reached. The returned
// error wraps ErrAllAttemptsFailed and the last node error.
//
// Pool satisfies jsonrpc.Client, so chain clients can use it in place of a
// single-node client.
func (p *Pool) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m := p.current()

		result, err := m.client.Fetch(ctx, method, params...)
		if err == nil {
			p.recordSuccess(m)
			return result, nil
		}

		lastErr = err
		p.recordFailure(m, err)

		logger.Warn(ctx, "node request failed, rotating",
			"node.name", m.node.Name,
			"rpc.method", method,
			"attempt", attempt,
			"error", err,
		)
	}

	return nil, fmt.Errorf("%w (%s, %d attempts): %w", ErrAllAttemptsFailed, method, p.MaxAttempts(), lastErr)
}

// Health returns a snapshot of every node in pool order.
func (p *Pool) Health() []NodeHealth {
	p.mu.Lock()
	defer p.mu.Unlock()

	health := make([]NodeHealth, len(p.members))
	for i, m := range p.members {
		health[i] = NodeHealth{
			Name:       m.node.Name,
			URL:        m.node.URL,
			Current:    i == p.cursor,
			Successes:  m.successes,
			Failures:   m.failures,
			LastError:  m.lastError,
			LastUsedAt: m.lastUsedAt,
		}
	}

	return health
}
