package test

import (
	"github.com/dentalanalytics/clinicas/clinicas"
	"github.com/dentalanalytics/clinicas/test"
)

func RandomCnpj() string {
	return test.Faker.Numerify("##.###.###/####-##")
}

func RandomClinica() clinicas.Clinica {
	return clinicas.Clinica{
		clinicas.FieldName:  test.Faker.Company().Name(),
		clinicas.FieldTaxId: RandomCnpj(),
		"endereco":          test.Faker.Address().Address(),
		"cidade":            test.Faker.Address().City(),
		"telefone":          test.Faker.Phone().Number(),
		"email":             test.Faker.Internet().Email(),
		"ativa":             test.Faker.Bool(),
	}
}
