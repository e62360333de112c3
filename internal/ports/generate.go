package ports

//go:generate mockery
