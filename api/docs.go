package api

// @title abapscan API
// @version 2.0.0
// @description API for scanning ABAP source units for obsolete and forbidden statements (Rule 303 / Rule 304).

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8703
// @BasePath /
// @schemes http
