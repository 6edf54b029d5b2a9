package query

import "go.mongodb.org/mongo-driver/bson"

type Station struct {
	PrimaryIdentifier string
}

func (s *Station) ToBson() bson.M {
	if s.PrimaryIdentifier != "" {
		return bson.M{"primaryidentifier": s.PrimaryIdentifier}
	}

	return nil
}

type StationList struct {
	LineRef string
}

func (s *StationList) ToBson() bson.M {
	if s.LineRef != "" {
		return bson.M{"lineref": s.LineRef}
	}

	return bson.M{}
}
