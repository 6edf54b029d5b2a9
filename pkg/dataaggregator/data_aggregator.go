package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/metroplan/metroplan/pkg/dataaggregator/source/databaselookup"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source/farequote"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source/journeyplanner"
	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var globalAggregator Aggregator

func GlobalSetup() {
	globalAggregator = Aggregator{}

	globalAggregator.RegisterSource(databaselookup.Source{})
	globalAggregator.RegisterSource(journeyplanner.Source{})
	globalAggregator.RegisterSource(farequote.Source{})
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

func Lookup[T any](query any) (T, error) {
	var empty T

	for _, source := range globalAggregator.Sources {
		matches := false

		lookupType := reflect.TypeOf(*new(T))
		if lookupType.Kind() == reflect.Pointer {
			lookupType = lookupType.Elem()
		}

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			returnValue, returnError := source.Lookup(query)

			if returnValue == nil {
				return empty, returnError
			}

			return returnValue.(T), returnError
		}
	}

	return empty, errors.New("Failed to find a matching Data Source for type")
}
