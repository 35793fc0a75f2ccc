package provider

// FirstNames is the pool of given names used by PoolFallback
var FirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
	"Thomas", "Daniel", "Matthew", "Andrew", "George", "Samuel", "Patrick", "Jack",
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Susan", "Sarah", "Karen",
	"Emily", "Laura", "Rebecca", "Anna", "Emma", "Rachel", "Ruth", "Maria",
}

// LastNames is the pool of family names used by PoolFallback
var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson",
	"Anderson", "Taylor", "Thomas", "Moore", "Martin", "Jackson", "White", "Harris",
	"Clark", "Lewis", "Walker", "Hall", "Allen", "Young", "King", "Wright",
}
