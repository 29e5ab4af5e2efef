package graph

// Schema is the public GraphQL contract of the backend.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type User {
	id: ID!
	firstName: String!
	lastName: String!
	address: String!
	phoneNumber: String!
	email: String!
	createdAt: String!
	updatedAt: String!
}

type Product {
	id: ID!
	name: String!
	description: String!
	price: Float!
	rentPrice: Float!
	rentType: String!
	userId: ID!
	views: Int!
	categories: [String!]!
	createdAt: String!
	updatedAt: String!
}

input UserInput {
	firstName: String!
	lastName: String!
	address: String!
	phoneNumber: String!
	email: String!
	password: String!
}

input ProductInput {
	name: String!
	description: String!
	price: Float!
	rentPrice: Float!
	rentType: String!
	email: String!
	categories: [String!]!
}

type LoginResponse {
	success: Boolean!
	message: String!
}

type CreateProductResponse {
	success: Boolean!
	message: String!
	product: Product!
}

type Query {
	getUserProducts(email: String!): [Product]!
	getProduct(id: Int!): Product
}

type Mutation {
	createUser(data: UserInput!): User!
	loginUser(email: String!, password: String!): LoginResponse!
	createProduct(data: ProductInput!): CreateProductResponse!
	deleteProduct(id: Int!): Boolean!
}
`
