package entity

// AlertaStock es la señal de reposición que emite el evaluador de mínimos
// cuando el saldo disponible de un producto cae bajo su stock mínimo. El core
// solo produce la señal; la entrega (correo, dashboard) es de un colaborador
// externo, incluida la deduplicación si hiciera falta.
type AlertaStock struct {
	SedeID     string
	ProductoID string
	Disponible int64
	Minimo     int64
	Deficit    int64
}
