package pathfind

import "errors"

var (
	// ErrTargetUnreachable возвращается, когда целевой узел не разрешается в графе
	ErrTargetUnreachable = errors.New("pathfind: target node is unreachable")

	// ErrNoPath возвращается, когда между узлами нет пути (граф несвязен).
	// Это ожидаемый, пользовательский исход, а не сбой системы.
	ErrNoPath = errors.New("pathfind: no path between nodes")
)
