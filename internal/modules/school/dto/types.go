package dto

type SchoolOutput struct {
	ID        int64
	ShortName string
	Name      string
}
