package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxxcmd/internal/adapters/logger"
	"go.trai.ch/cxxcmd/internal/core/ports"
)

// NodeID is the unique identifier for the compiler discoverer Graft node.
const NodeID graft.ID = "adapter.discoverer"

func init() {
	graft.Register(graft.Node[ports.CompilerDiscoverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerDiscoverer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiscoverer(log), nil
		},
	})
}
