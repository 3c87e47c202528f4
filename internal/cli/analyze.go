package cli

import (
	"github.com/spf13/cobra"

	"pet-care-insights/internal/domain/care"
)

func newAnalyzeCmd() *cobra.Command {
	var rec struct {
		name, category, breed, age, weight string
	}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Calcula el reporte de cuidado de una mascota y lo imprime como JSON",
		Example: `  petcare analyze --category Dogs --breed Bulldog --age 9 --weight 25
  petcare analyze --category Cats --name Nube`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := care.Analyze(care.PetRecord{
				Name:     rec.name,
				Category: rec.category,
				Breed:    rec.breed,
				Age:      care.FlexNumber(rec.age),
				Weight:   care.FlexNumber(rec.weight),
			})
			return printJSON(cmd.OutOrStdout(), rep)
		},
	}

	f := cmd.Flags()
	f.StringVar(&rec.name, "name", "", "nombre de la mascota")
	f.StringVar(&rec.category, "category", "", "Dogs, Cats, Birds u Other")
	f.StringVar(&rec.breed, "breed", "", "raza (texto libre)")
	f.StringVar(&rec.age, "age", "", "edad en años; vacío usa el default")
	f.StringVar(&rec.weight, "weight", "", "peso en kg; vacío usa el default")
	return cmd
}
