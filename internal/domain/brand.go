package domain

// Brand é uma entidade de referência imutável: criada fora do sistema e
// referenciada por todas as métricas e conteúdos.
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
