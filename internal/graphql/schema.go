package graphql

import (
	graphqlgo "github.com/graph-gophers/graphql-go"

	"bookvault/internal/services"
)

// Schema is the query/mutation surface. It shares one identity model with
// the REST routes: the execution context either carries verified claims
// or runs anonymously, and each resolver enforces its own authorization.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		# Returns the logged in user data
		me: User
	}

	type Mutation {
		login(email: String!, password: String!): Auth!
		addUser(username: String!, email: String!, password: String!): Auth!
		saveBook(bookData: BookInput!): User!
		removeBook(bookId: String!): User!
	}

	# A user-owned reference to an external catalog entry
	type Book {
		bookId: String!
		title: String!
		authors: [String!]!
		description: String!
		image: String
		link: String
	}

	type User {
		id: ID!
		username: String!
		email: String!
		bookCount: Int!
		savedBooks: [Book!]!
	}

	# Issued on successful login or registration
	type Auth {
		token: ID!
		user: User!
	}

	input BookInput {
		bookId: String!
		title: String!
		authors: [String!]
		description: String
		image: String
		link: String
	}
`

// ParseSchema binds the schema to a resolver over the given services.
func ParseSchema(authSvc *services.AuthService, bookSvc *services.BookService) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(Schema, NewResolver(authSvc, bookSvc))
}
