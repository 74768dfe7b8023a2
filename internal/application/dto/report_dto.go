package dto

// ManagerReport totales de un manager: personal a cargo y productos asignados.
type ManagerReport struct {
	TotalStaff    int64 `json:"total_staff"`
	TotalProducts int64 `json:"total_products"`
}

// ActionCount conteo de logs para un tipo de acción.
type ActionCount struct {
	ActionType string `json:"action_type"`
	Count      int64  `json:"count"`
}

// ProductMovement sumas de entradas y salidas solicitadas por producto.
// Los productos sin logs aparecen con ceros, nunca se omiten.
type ProductMovement struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	TotalAdded   int64  `json:"total_added"`
	TotalRemoved int64  `json:"total_removed"`
}

// InventoryReport reporte agregado del log de inventario.
type InventoryReport struct {
	TotalLogs       int64             `json:"total_logs"`
	LogsByAction    []ActionCount     `json:"logs_by_action"`
	ProductMovement []ProductMovement `json:"product_movement"`
}

// InventoryStatistics estadísticas generales con productos en stock bajo.
type InventoryStatistics struct {
	TotalProducts    int64             `json:"total_products"`
	TotalLogs        int64             `json:"total_logs"`
	LowStockProducts []ProductResponse `json:"low_stock_products"`
}
