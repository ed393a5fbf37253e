package ports

// Notifier muestra mensajes transitorios al usuario (validación fallida,
// cálculo completado). Cada mensaje nuevo reemplaza al anterior y se
// descarta solo tras un intervalo fijo.
type Notifier interface {
	Error(msg string)
	Success(msg string)
}
