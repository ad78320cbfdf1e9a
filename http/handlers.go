package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"rinha/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

var (
	GetConnection = db.GetConnection

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// failedMessage is the only thing a client ever sees of an internal error.
const failedMessage = "Manda o negócio direito porque deu bom não"

type messageResponse struct {
	Message string `json:"message"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type createdResponse struct {
	Id uuid.UUID `json:"id"`
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println(err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJson(w, status, messageResponse{Message: message})
}

func writeFailed(w http.ResponseWriter) {
	writeMessage(w, http.StatusInternalServerError, failedMessage)
}

func HealthCheck(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	writeMessage(w, http.StatusOK, "ok")
}

func CreatePessoa(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("error reading body %s\n", err)
		writeFailed(w)
		return
	}

	pessoa, err := ParsePessoa(body)

	var rejection *ValidationError
	if errors.As(err, &rejection) {
		writeMessage(w, http.StatusUnprocessableEntity, rejection.Msg)
		return
	}
	if err != nil {
		// not a rejection: the body was not parseable at all
		log.Printf("error parsing input %s\n", err)
		writeFailed(w)
		return
	}

	pessoa.Id = uuid.New()

	err = db.SavePessoa(GetConnection(), pessoa.Id, *pessoa)

	if errors.Is(err, db.ErrPessoaExists) {
		writeMessage(w, http.StatusUnprocessableEntity, "This person already exists.")
		return
	}
	if err != nil {
		log.Printf("error executing insert %s\n", err)
		writeFailed(w)
		return
	}

	log.Println(fmt.Sprintf("created Pessoa with id %s", pessoa.Id))

	w.Header().Set("Location", fmt.Sprintf("/pessoas/%s", pessoa.Id))
	writeJson(w, http.StatusCreated, createdResponse{Id: pessoa.Id})
}

func GetPessoa(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	param := ps.ByName("id")

	// anything that is not a well-formed uuid cannot be a persisted id, so
	// skip the store entirely
	id, err := uuid.Parse(param)
	if err != nil {
		log.Println(fmt.Sprintf("get Pessoa with invalid uuid %s %s", param, err))
		writeMessage(w, http.StatusNotFound, "This person do not exist.")
		return
	}

	pessoa, err := db.GetPessoaById(GetConnection(), id)

	if errors.Is(err, pgx.ErrNoRows) {
		writeMessage(w, http.StatusNotFound, "This person do not exist.")
		return
	}
	if err != nil {
		log.Println(err)
		writeFailed(w)
		return
	}

	writeJson(w, http.StatusOK, pessoa)
}

func GetPessoas(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	searchTerm := r.URL.Query().Get("t")

	if searchTerm == "" {
		writeMessage(w, http.StatusBadRequest, "The query parameter 't' is required")
		return
	}

	pessoas, err := db.FindPessoas(GetConnection(), searchTerm)

	if err != nil {
		log.Println(err)
		writeFailed(w)
		return
	}

	writeJson(w, http.StatusOK, pessoas)
}

func GetPessoaCount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	count, err := db.CountPessoa(GetConnection())

	if err != nil {
		log.Println(err)
		writeFailed(w)
		return
	}

	writeJson(w, http.StatusOK, countResponse{Count: count})
}
