package domain

var Tables = []interface{}{
	&Farmer{},
	&Category{},
	&Product{},
	&Service{},
	&Order{},
}
