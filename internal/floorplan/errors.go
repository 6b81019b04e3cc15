package floorplan

import "errors"

var (
	// ErrNodeNotFound возвращается, когда узел графа не найден в схеме уровня
	ErrNodeNotFound = errors.New("floorplan: node not found")

	// ErrLayoutNotFound возвращается, когда для пары (mall, level) нет схемы
	ErrLayoutNotFound = errors.New("floorplan: layout not found")

	// ErrInvalidLayout возвращается при некорректной конфигурации схемы уровня
	ErrInvalidLayout = errors.New("floorplan: invalid layout configuration")

	// ErrSlotNotMapped возвращается, когда слот ссылается на несуществующие узлы графа
	ErrSlotNotMapped = errors.New("floorplan: slot is not mapped to graph nodes")
)
