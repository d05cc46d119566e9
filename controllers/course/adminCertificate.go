package controllers

import (
	"fmt"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminListCertificateRequests lists pending certificate requests
func AdminListCertificateRequests(c *fiber.Ctx) error {
	_, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	type RequestWithDetails struct {
		courseModels.CertificateRequest
		UserName   string `json:"user_name"`
		UserEmail  string `json:"user_email"`
		CourseName string `json:"course_name"`
	}

	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", "PENDING", false).
		Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate requests!", nil)
	}

	result := make([]RequestWithDetails, len(requests))
	for i, req := range requests {
		var reqUser models.User
		var course courseModels.Course
		database.Database.Db.Where("id = ?", req.UserID).First(&reqUser)
		database.Database.Db.Where("id = ?", req.CourseID).First(&course)
		result[i] = RequestWithDetails{
			CertificateRequest: req,
			UserName:           reqUser.Name,
			UserEmail:          reqUser.Email,
			CourseName:         course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate requests fetched successfully!", fiber.Map{
		"requests": result,
		"total":    len(result),
	})
}

// AdminApproveCertificate approves a pending request and issues the certificate
func AdminApproveCertificate(c *fiber.Ctx) error {
	admin, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate request is not pending!", nil)
	}

	var reqUser models.User
	if err := database.Database.Db.Where("id = ?", request.UserID).First(&reqUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", request.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	now := time.Now()
	adminID := admin.ID
	certificateNumber := fmt.Sprintf("CERT-%d-%d-%d", request.CourseID, request.UserID, now.Unix())

	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseID:          request.CourseID,
		CertificateNumber: certificateNumber,
		IssuedAt:          now,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	request.Status = "APPROVED"
	request.ApprovedAt = &now
	request.ApprovedBy = &adminID
	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate request!", nil)
	}
	tx.Commit()

	utils.SendCertificateEmail(reqUser.Email, reqUser.Name, course.Title, certificateNumber)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate approved and issued!", certificate)
}

// AdminRejectCertificate rejects a pending certificate request
func AdminRejectCertificate(c *fiber.Ctx) error {
	admin, ok := isAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate request is not pending!", nil)
	}

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Reason == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rejection reason is required!", nil)
	}

	now := time.Now()
	adminID := admin.ID
	request.Status = "REJECTED"
	request.RejectionReason = reqData.Reason
	request.ApprovedAt = &now
	request.ApprovedBy = &adminID

	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject certificate request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}
