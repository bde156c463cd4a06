package clinicas_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dentalanalytics/clinicas/clinicas"
)

func Ptr[T any](value T) *T {
	return &value
}

var _ = Describe("Clinicas", func() {
	Describe("Filter", func() {
		It("selects everything without a search", func() {
			Expect((&clinicas.Filter{}).Selector()).To(BeEmpty())
		})

		It("selects everything for a nil filter", func() {
			var filter *clinicas.Filter
			Expect(filter.Selector()).To(BeEmpty())
		})

		It("treats an empty search as no search", func() {
			Expect((&clinicas.Filter{Search: Ptr("")}).Selector()).To(BeEmpty())
		})

		It("matches the name or the tax id case-insensitively", func() {
			selector := (&clinicas.Filter{Search: Ptr("sorriso")}).Selector()
			pattern := primitive.Regex{Pattern: "sorriso", Options: "i"}
			Expect(selector).To(Equal(bson.M{
				"$or": bson.A{
					bson.M{"nomeClinica": pattern},
					bson.M{"cnpj": pattern},
				},
			}))
		})
	})

	Describe("Clinica", func() {
		It("returns the object id", func() {
			id := primitive.NewObjectID()
			clinica := clinicas.Clinica{"_id": id}

			actual, ok := clinica.Id()
			Expect(ok).To(BeTrue())
			Expect(actual).To(Equal(id))
		})

		It("reports a missing object id", func() {
			_, ok := clinicas.Clinica{"_id": "custom"}.Id()
			Expect(ok).To(BeFalse())
		})

		It("formats fields as strings", func() {
			clinica := clinicas.Clinica{"nomeClinica": "Odonto Sorriso", "unidades": int32(3), "vazio": nil}
			Expect(clinica.String("nomeClinica")).To(Equal("Odonto Sorriso"))
			Expect(clinica.String("unidades")).To(Equal("3"))
			Expect(clinica.String("vazio")).To(BeEmpty())
			Expect(clinica.String("ausente")).To(BeEmpty())
		})
	})
})
