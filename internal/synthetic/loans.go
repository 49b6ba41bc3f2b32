// Package synthetic generates a synthetic Canadian retail loan portfolio
// used to exercise downstream credit models against the stress scenarios.
// Draws come from fixed distributions so a given seed always reproduces the
// same portfolio.
package synthetic

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultLoanCount is the portfolio size generated when none is requested.
const DefaultLoanCount = 10000

// Product types and their portfolio mix.
var (
	productTypes   = []string{"Mortgage", "HELOC", "Auto", "Credit Card"}
	productWeights = []float64{0.4, 0.2, 0.3, 0.1}

	provinces       = []string{"ON", "BC", "QC", "AB", "MB", "SK"}
	provinceWeights = []float64{0.38, 0.13, 0.23, 0.11, 0.08, 0.07}
)

// originationEnd is the timestamp of the newest loan. Earlier loans are
// spaced one hour apart going back from it.
var originationEnd = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Loan is one synthetic loan record.
type Loan struct {
	ID              string
	CustomerID      string
	OriginationDate time.Time
	ProductType     string
	Province        string
	OriginalAmount  float64
	InterestRate    float64
	CreditScore     int
	AnnualIncome    float64
	LoanToValue     float64
	Defaulted       bool
}

// Generator draws synthetic loans and payment histories from a seeded source.
type Generator struct {
	src rand.Source
	rng *rand.Rand

	product distuv.Categorical
	region  distuv.Categorical
	amount  distuv.LogNormal
	// Mortgages are drawn from a higher, tighter amount distribution.
	mortgageAmount distuv.LogNormal
	rate           distuv.Uniform
	score          distuv.Normal
	income         distuv.LogNormal
	ltv            distuv.Beta
	dpd            distuv.Categorical
}

// NewGenerator creates a generator seeded for reproducible output.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed)
	return &Generator{
		src:            src,
		rng:            rand.New(src),
		product:        distuv.NewCategorical(productWeights, src),
		region:         distuv.NewCategorical(provinceWeights, src),
		amount:         distuv.LogNormal{Mu: 11, Sigma: 1.5, Src: src},
		mortgageAmount: distuv.LogNormal{Mu: 12.5, Sigma: 0.8, Src: src},
		rate:           distuv.Uniform{Min: 0.02, Max: 0.08, Src: src},
		score:          distuv.Normal{Mu: 700, Sigma: 80, Src: src},
		income:         distuv.LogNormal{Mu: 10.8, Sigma: 0.6, Src: src},
		ltv:            distuv.Beta{Alpha: 5, Beta: 2, Src: src},
		dpd:            distuv.NewCategorical(dpdWeights, src),
	}
}

// Loans generates n loans with hourly origination timestamps ending at the
// portfolio cut-off date.
func (g *Generator) Loans(n int) []Loan {
	start := originationEnd.Add(-time.Duration(n-1) * time.Hour)

	loans := make([]Loan, n)
	for i := range loans {
		product := productTypes[int(g.product.Rand())]
		amount := g.amount.Rand()
		if product == "Mortgage" {
			amount = g.mortgageAmount.Rand()
		}
		score := clipScore(g.score.Rand())

		loans[i] = Loan{
			ID:              fmt.Sprintf("L%08d", i),
			CustomerID:      fmt.Sprintf("C%08d", i),
			OriginationDate: start.Add(time.Duration(i) * time.Hour),
			ProductType:     product,
			Province:        provinces[int(g.region.Rand())],
			OriginalAmount:  amount,
			InterestRate:    g.rate.Rand(),
			CreditScore:     score,
			AnnualIncome:    g.income.Rand(),
			LoanToValue:     g.ltv.Rand(),
			Defaulted:       g.defaultFlag(score),
		}
	}
	return loans
}

// defaultFlag draws a default indicator whose probability falls with credit
// score following a logistic curve centered at 650.
func (g *Generator) defaultFlag(score int) bool {
	p := 1 / (1 + math.Exp(float64(score-650)/50))
	return distuv.Bernoulli{P: p, Src: g.src}.Rand() == 1
}

func clipScore(v float64) int {
	if v < 300 {
		return 300
	}
	if v > 900 {
		return 900
	}
	return int(v)
}
