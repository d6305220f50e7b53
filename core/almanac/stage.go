package almanac

import "fmt"

// Domain names one category of the chain (seed, soil, ...).
type Domain uint8

const (
	Seed Domain = iota
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
	numDomains
)

var domainNames = [numDomains]string{
	Seed:        "seed",
	Soil:        "soil",
	Fertilizer:  "fertilizer",
	Water:       "water",
	Light:       "light",
	Temperature: "temperature",
	Humidity:    "humidity",
	Location:    "location",
}

func (d Domain) String() string {
	if d < numDomains {
		return domainNames[d]
	}
	return fmt.Sprintf("Domain(%d)", uint8(d))
}

// ParseDomain maps a lowercase domain name to its Domain.
func ParseDomain(name string) (Domain, error) {
	for d, n := range domainNames {
		if n == name {
			return Domain(d), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown domain %q", ErrSyntax, name)
}

// Stage is one step of the chain, keyed by its source and destination
// domains.
type Stage struct {
	From, To Domain
}

func (s Stage) String() string { return s.From.String() + "-to-" + s.To.String() }

// Order is the fixed sequence every run walks, seed to location.
var Order = [...]Stage{
	{Seed, Soil},
	{Soil, Fertilizer},
	{Fertilizer, Water},
	{Water, Light},
	{Light, Temperature},
	{Temperature, Humidity},
	{Humidity, Location},
}
