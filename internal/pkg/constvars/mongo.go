package constvars

const (
	MongoCollectionUsers     = "users"
	MongoCollectionHospitals = "hospitals"
	MongoCollectionTokens    = "tokens"
)
