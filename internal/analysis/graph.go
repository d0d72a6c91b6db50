package analysis

import (
	"encoding/json"
	"strings"

	"github.com/projectsentry/narrative-analyzer/internal/domain"
	"github.com/projectsentry/narrative-analyzer/internal/logger"
)

// mentionTrimSet is stripped from both ends of an @-mention token before
// matching. Kept exactly as-is: widening it silently changes edge counts.
const mentionTrimSet = "@,."

// GraphNode is a node in the mention graph. Identity keeps its original
// casing for display; matching is done case-folded.
type GraphNode struct {
	Identity  string  `json:"identity"`
	BotScore  int     `json:"bot_score"`
	Influence float64 `json:"influence"`
}

// GraphEdge is an undirected, unweighted edge between two identities.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MentionGraph is the undirected social graph derived from @-mentions.
// Edges are deduplicated and self-loops rejected. A graph is built fresh per
// detection run and has no life outside it.
type MentionGraph struct {
	order []string
	nodes map[string]*GraphNode
	adj   map[string]map[string]struct{}
	edges []GraphEdge
}

// NewMentionGraph creates an empty graph.
func NewMentionGraph() *MentionGraph {
	return &MentionGraph{
		nodes: make(map[string]*GraphNode),
		adj:   make(map[string]map[string]struct{}),
	}
}

// AddNode adds a node keyed by the raw identity string. Re-adding an
// existing identity updates its bot score (last record wins).
func (g *MentionGraph) AddNode(identity string, botScore int) {
	if node, ok := g.nodes[identity]; ok {
		node.BotScore = botScore
		return
	}
	g.nodes[identity] = &GraphNode{Identity: identity, BotScore: botScore}
	g.order = append(g.order, identity)
}

// AddEdge adds an undirected edge between two existing nodes. Self-loops,
// unknown endpoints, and duplicate pairs are ignored.
func (g *MentionGraph) AddEdge(a, b string) {
	if a == b {
		return
	}
	if _, ok := g.nodes[a]; !ok {
		return
	}
	if _, ok := g.nodes[b]; !ok {
		return
	}
	if _, dup := g.adj[a][b]; dup {
		return
	}
	if g.adj[a] == nil {
		g.adj[a] = make(map[string]struct{})
	}
	if g.adj[b] == nil {
		g.adj[b] = make(map[string]struct{})
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.edges = append(g.edges, GraphEdge{From: a, To: b})
}

// NodeCount returns the number of nodes.
func (g *MentionGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct undirected edges.
func (g *MentionGraph) EdgeCount() int {
	return len(g.edges)
}

// Node returns the node for a raw identity.
func (g *MentionGraph) Node(identity string) (*GraphNode, bool) {
	node, ok := g.nodes[identity]
	return node, ok
}

// Nodes returns all nodes in insertion order.
func (g *MentionGraph) Nodes() []*GraphNode {
	out := make([]*GraphNode, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *MentionGraph) Edges() []GraphEdge {
	out := make([]GraphEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Degree returns the number of neighbors of a node.
func (g *MentionGraph) Degree(identity string) int {
	return len(g.adj[identity])
}

// computeInfluence stores degree centrality (degree / (N-1)) on every node.
// Graphs with a single node or none get influence 0 everywhere.
func (g *MentionGraph) computeInfluence() {
	n := len(g.nodes)
	if n <= 1 {
		for _, node := range g.nodes {
			node.Influence = 0
		}
		return
	}
	denom := float64(n - 1)
	for id, node := range g.nodes {
		node.Influence = float64(len(g.adj[id])) / denom
	}
}

// MarshalJSON renders the graph as explicit node and edge lists for the
// presentation layer.
func (g *MentionGraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Nodes []*GraphNode `json:"nodes"`
		Edges []GraphEdge  `json:"edges"`
	}{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	})
}

// BuildMentionGraph constructs the mention graph for a record set. textField
// is the resolved text field name; when it is empty (no usable text field in
// the set) the result is an empty graph with no nodes.
func BuildMentionGraph(records []domain.Record, textField string, log logger.Logger) *MentionGraph {
	g := NewMentionGraph()
	if textField == "" {
		return g
	}

	// Case-folded identity -> canonical raw identity (first record wins).
	canonical := make(map[string]string, len(records))
	for _, rec := range records {
		identity := rec.Text(domain.FieldIdentity)
		if identity == "" {
			continue
		}
		folded := strings.ToLower(identity)
		if _, ok := canonical[folded]; !ok {
			canonical[folded] = identity
		}
	}

	for _, rec := range records {
		identity := rec.Text(domain.FieldIdentity)
		if identity == "" {
			continue
		}
		botScore, _ := rec.Int(domain.FieldBotScore)
		g.AddNode(identity, botScore)
	}

	for _, rec := range records {
		identity := rec.Text(domain.FieldIdentity)
		if identity == "" {
			continue
		}
		folded := strings.ToLower(identity)

		for _, token := range strings.Fields(rec.Text(textField)) {
			if !strings.HasPrefix(token, "@") {
				continue
			}
			mention := strings.ToLower(strings.Trim(token, mentionTrimSet))
			if mention == "" || mention == folded {
				continue
			}
			target, known := canonical[mention]
			if !known {
				continue
			}
			g.AddEdge(identity, target)
		}
	}

	g.computeInfluence()

	log.Debug("mention graph built",
		logger.Int("nodes", g.NodeCount()),
		logger.Int("edges", g.EdgeCount()))
	return g
}
