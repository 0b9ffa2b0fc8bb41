package people

// ListInput defines query parameters for listing people.
type ListInput struct {
	Limit   int  `query:"limit"   minimum:"0" doc:"Maximum number of people to return; 0 returns everyone" example:"25"`
	Offset  int  `query:"offset"  minimum:"0" doc:"Number of people to skip for pagination"                example:"50"`
	Details bool `query:"details" doc:"Request full profile data instead of names only"`
}

// GetInput defines path parameters for retrieving one person.
type GetInput struct {
	PersonID string `path:"personId" doc:"Person identifier" example:"12345" pattern:"^[0-9]+$"`
}
